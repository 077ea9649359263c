package progress

import "github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"

// Milestones passes on forced updates and missing files only. It keeps logs
// of non-interactive runs short.
type Milestones struct {
	Sink ports.ProgressSink
}

var _ ports.ProgressSink = Milestones{}

// Update forwards forced updates.
func (m Milestones) Update(msg string, current, total int, force bool) {
	if force {
		m.Sink.Update(msg, current, total, force)
	}
}

// Clear forwards to the sink.
func (m Milestones) Clear() {
	m.Sink.Clear()
}

// ReportMissing forwards to the sink.
func (m Milestones) ReportMissing(path string) {
	m.Sink.ReportMissing(path)
}
