// Package progress renders resolution progress and missing-file diagnostics.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/ui/output"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/ui/style"
)

// Reporter implements ports.ProgressSink with linear, line-per-update output.
// Unforced updates arriving within the interval of the previous one are dropped.
type Reporter struct {
	w   io.Writer
	out *termenv.Output
	now func() time.Time

	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

var _ ports.ProgressSink = (*Reporter)(nil)

// Option configures a Reporter.
type Option func(*Reporter)

// WithClock replaces the time source used for throttling.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) { r.now = now }
}

// NewReporter creates a Reporter writing to w, or stderr when w is nil.
func NewReporter(w io.Writer, interval time.Duration, opts ...Option) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	r := &Reporter{
		w:        w,
		out:      output.New(w),
		now:      time.Now,
		interval: interval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetInterval changes the throttle interval.
func (r *Reporter) SetInterval(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interval = d
}

// Update prints a progress line unless it is throttled.
func (r *Reporter) Update(msg string, current, total int, force bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if !force && !r.last.IsZero() && now.Sub(r.last) < r.interval {
		return
	}
	r.last = now

	prefix := r.out.String(fmt.Sprintf("[%d/%d]", current, total)).Faint().String()
	_, _ = fmt.Fprintf(r.w, "%s %s\n", prefix, msg)
}

// Clear resets the throttle so the next run starts fresh.
func (r *Reporter) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = time.Time{}
}

// ReportMissing prints a missing asset file.
func (r *Reporter) ReportMissing(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	symbol := r.out.String(style.Warning).Foreground(termenv.RGBColor(string(style.Yellow))).String()
	_, _ = fmt.Fprintf(r.w, "%s missing %s\n", symbol, path)
}
