package console

import (
	"context"
	"net"
	"time"

	"github.com/mixdeck/scenectl/internal/observability"
	"github.com/mixdeck/scenectl/internal/osc"
)

// Inbound is the bounded queue of decoded console messages, fed by the
// listener and drained by whoever wants read-back data. When nobody drains
// it, new messages are dropped rather than blocking the listener.
func (s *Session) Inbound() <-chan osc.Message {
	return s.inbound
}

// Listen reads datagrams until ctx is cancelled or the session is closed.
// Malformed datagrams are dropped and counted; any datagram at all marks
// the console reachable.
func (s *Session) Listen(ctx context.Context) {
	buf := make([]byte, 4096)
	for {
		if ctx.Err() != nil || s.closed.Load() {
			return
		}
		if err := s.conn.SetReadDeadline(deadlineFrom(s.cfg)); err != nil {
			return
		}
		n, err := s.conn.Read(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			// Closed socket or hard error: the session owner decides
			// whether to redial.
			return
		}
		s.markHeard()

		msg, err := osc.Decode(buf[:n])
		if err != nil {
			observability.RecordInboundDropped()
			s.log.Debug().Err(err).Int("bytes", n).Msg("dropped malformed datagram")
			continue
		}
		select {
		case s.inbound <- msg:
		default:
			observability.RecordInboundDropped()
		}
	}
}

func deadlineFrom(cfg Config) time.Time {
	timeout := cfg.ReadTimeout
	if timeout <= 0 {
		timeout = time.Second
	}
	return time.Now().Add(timeout)
}
