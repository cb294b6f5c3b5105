package config

import (
	"fmt"
	"os"
)

const configTemplate = `# scenectl configuration

# Console OSC control endpoint.
console_addr = "192.168.1.116:10023"

# Scene file to watch for changes.
scene_path = "integrated.scn"

# Transport timing.
probe_timeout = "2s"
read_timeout = "1s"
send_gap = "100ms"

# Watch loop: how often the file is polled and how long a burst of edits
# must be quiet before a pass runs.
poll_interval = "500ms"
debounce = "500ms"

queue_size = 64

# Prometheus endpoint; leave empty to disable.
metrics_addr = ""

# Fader calibration. Uncomment to override the built-in table; anchors must
# ascend in both db and norm.
#[fader]
#floor_db = -90.0
#ceiling_db = 10.0
#anchors = [
#  { db = -90.0, norm = 0.0 },
#  { db = -60.0, norm = 0.0625 },
#  { db = -30.0, norm = 0.25 },
#  { db = -10.0, norm = 0.5 },
#  { db = 0.0, norm = 0.75 },
#  { db = 10.0, norm = 1.0 },
#]
`

// WriteTemplate drops a starter config at path.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}
