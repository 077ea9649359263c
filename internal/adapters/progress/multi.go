package progress

import "github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"

// Multi fans progress out to several sinks.
type Multi []ports.ProgressSink

var _ ports.ProgressSink = Multi(nil)

// Update forwards to every sink.
func (m Multi) Update(msg string, current, total int, force bool) {
	for _, s := range m {
		s.Update(msg, current, total, force)
	}
}

// Clear forwards to every sink.
func (m Multi) Clear() {
	for _, s := range m {
		s.Clear()
	}
}

// ReportMissing forwards to every sink.
func (m Multi) ReportMissing(path string) {
	for _, s := range m {
		s.ReportMissing(path)
	}
}
