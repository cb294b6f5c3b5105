package observability

import (
	"testing"
	"time"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordSend("ch", "fader", true)
	RecordSend("bus", "on", false)
	RecordInboundDropped()
	RecordParseWarnings(3)
	RecordApplyPass("partial", 42*time.Millisecond)
}
