package console

import (
	"net"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mixdeck/scenectl/internal/osc"
)

var (
	ErrLivenessTimeout = errors.New("console: no response within probe timeout")
	ErrSessionClosed   = errors.New("console: session closed")
)

// Config holds transport settings for one console session.
type Config struct {
	// Addr is the console's control endpoint, host:port.
	Addr string
	// ProbeTimeout bounds how long Dial and Probe wait for liveness
	// evidence.
	ProbeTimeout time.Duration
	// ReadTimeout is the listener's per-read deadline, so it can notice
	// shutdown without an inbound datagram.
	ReadTimeout time.Duration
	// SendGap is the minimum pause between consecutive sends, keeping a
	// burst of changes from saturating the console's receive buffer.
	SendGap time.Duration
	// QueueSize bounds the inbound message channel.
	QueueSize int
}

func DefaultConfig() Config {
	return Config{
		ProbeTimeout: 2 * time.Second,
		ReadTimeout:  time.Second,
		SendGap:      100 * time.Millisecond,
		QueueSize:    64,
	}
}

// Session is one outbound datagram socket bound to the console. The apply
// loop is its sole owner; the listener goroutine only reads inbound bytes
// and flips the reachability flag, never the session's identity.
type Session struct {
	cfg       Config
	conn      *net.UDPConn
	log       zerolog.Logger
	reachable atomic.Bool
	lastHeard atomic.Int64
	closed    atomic.Bool
	inbound   chan osc.Message
}

// Dial opens a socket to the console and probes it once. A silent console
// is not proof of failure on a connectionless transport, so on probe
// timeout Dial returns the session together with ErrLivenessTimeout; the
// caller may keep it and probe again later. Any other error means no
// session.
func Dial(cfg Config, log zerolog.Logger) (*Session, error) {
	raddr, err := net.ResolveUDPAddr("udp", cfg.Addr)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve console addr %q", cfg.Addr)
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial console %q", cfg.Addr)
	}

	s := &Session{
		cfg:     cfg,
		conn:    conn,
		log:     log.With().Str("console", cfg.Addr).Logger(),
		inbound: make(chan osc.Message, cfg.QueueSize),
	}
	if err := s.Probe(); err != nil {
		return s, err
	}
	return s, nil
}

// Probe sends a low-cost info query and waits for any inbound datagram.
// Any response at all is treated as evidence the endpoint is alive; it
// does not have to be a semantically matching reply.
func (s *Session) Probe() error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	start := time.Now()
	if err := s.Send(osc.Message{Address: "/xinfo"}); err != nil {
		return err
	}

	buf := make([]byte, 4096)
	if err := s.conn.SetReadDeadline(start.Add(s.cfg.ProbeTimeout)); err != nil {
		return errors.Wrap(err, "set probe deadline")
	}
	_, err := s.conn.Read(buf)
	if err != nil {
		// A concurrent listener read may have consumed the reply; any
		// datagram heard during the probe window still counts.
		if s.lastHeard.Load() >= start.UnixNano() {
			return nil
		}
		s.reachable.Store(false)
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return ErrLivenessTimeout
		}
		return errors.Wrap(err, "probe read")
	}
	s.markHeard()
	s.log.Debug().Msg("console answered liveness probe")
	return nil
}

func (s *Session) markHeard() {
	s.lastHeard.Store(time.Now().UnixNano())
	s.reachable.Store(true)
}

// Send encodes and writes one message. Delivery is fire-and-forget; the
// protocol defines no acknowledgment and a dropped datagram is accepted
// as lost.
func (s *Session) Send(msg osc.Message) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	data, err := osc.Encode(msg)
	if err != nil {
		return err
	}
	if _, err := s.conn.Write(data); err != nil {
		return errors.Wrapf(err, "send %s", msg.Address)
	}
	return nil
}

// Remote subscribes to console state broadcasts for read-back. The console
// expires the subscription after a short window, so callers renew it
// periodically if they care.
func (s *Session) Remote() error {
	return s.Send(osc.Message{Address: "/xremote"})
}

// Reachable reports whether the console has ever answered on this session
// and has not failed a probe since.
func (s *Session) Reachable() bool {
	return s.reachable.Load()
}

// Close shuts the socket. In-flight reads fail fast, which is how the
// listener goroutine learns to exit.
func (s *Session) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.conn.Close()
}
