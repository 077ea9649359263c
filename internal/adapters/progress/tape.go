package progress

import (
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"github.com/vito/progrock"
	"go.trai.ch/zerr"
)

// Tape implements ports.ProgressSink by recording each run as a progrock
// vertex. Updates go to the vertex's stdout and missing files to its stderr.
type Tape struct {
	w   progrock.Writer
	rec *progrock.Recorder
	run string

	mu     sync.Mutex
	seq    int
	vertex *progrock.VertexRecorder
}

var _ ports.ProgressSink = (*Tape)(nil)

// NewTape creates a Tape recording to w. Vertices are named after run.
func NewTape(w progrock.Writer, run string) *Tape {
	return &Tape{
		w:   w,
		rec: progrock.NewRecorder(w),
		run: run,
	}
}

// OpenTape creates a Tape journaling to the file at path, one JSON status
// update per line.
func OpenTape(path, run string) (*Tape, error) {
	journal, err := progrock.CreateJournal(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTapeOpenFailed.Error()), "path", path)
	}
	return NewTape(journal, run), nil
}

// Update records a progress line, opening a vertex for the run if needed.
func (t *Tape) Update(msg string, current, total int, _ bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v := t.vertexLocked()
	_, _ = fmt.Fprintf(v.Stdout(), "[%d/%d] %s\n", current, total, msg)
}

// Clear completes the run's vertex.
func (t *Tape) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.vertex == nil {
		return
	}
	t.vertex.Done(nil)
	t.vertex = nil
}

// ReportMissing records a missing asset file on the last run's vertex.
func (t *Tape) ReportMissing(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v := t.vertexLocked()
	_, _ = fmt.Fprintf(v.Stderr(), "[%s] missing %s\n", domain.LogLevelWarn, path)
}

// Close completes any open vertex and closes the underlying writer.
func (t *Tape) Close() error {
	t.Clear()
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func (t *Tape) vertexLocked() *progrock.VertexRecorder {
	if t.vertex == nil {
		t.seq++
		name := fmt.Sprintf("%s #%d", t.run, t.seq)
		t.vertex = t.rec.Vertex(digest.FromString(name), name)
	}
	return t.vertex
}
