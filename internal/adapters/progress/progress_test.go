package progress_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/progress"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.uber.org/mock/gomock"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestReporter_ThrottlesUpdates(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	c := &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := progress.NewReporter(&buf, 100*time.Millisecond, progress.WithClock(c.Now))

	r.Update("Resolving loadout", 0, 3, true)
	c.Advance(10 * time.Millisecond)
	r.Update("Resolved hardpoint_a", 1, 3, false)
	c.Advance(10 * time.Millisecond)
	r.Update("Resolved hardpoint_b", 2, 3, true)
	c.Advance(200 * time.Millisecond)
	r.Update("Resolved hardpoint_c", 3, 3, false)

	assert.Equal(t, "[0/3] Resolving loadout\n[2/3] Resolved hardpoint_b\n[3/3] Resolved hardpoint_c\n", buf.String())
}

func TestReporter_ClearResetsThrottle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	c := &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := progress.NewReporter(&buf, time.Hour, progress.WithClock(c.Now))

	r.Update("first run", 1, 1, false)
	r.Clear()
	r.Update("second run", 1, 1, false)
	r.SetInterval(0)
	r.Update("unthrottled", 1, 1, false)

	assert.Equal(t, "[1/1] first run\n[1/1] second run\n[1/1] unthrottled\n", buf.String())
}

func TestReporter_ReportMissing(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := progress.NewReporter(&buf, 0)

	r.ReportMissing("Objects/Characters/backpack.glb")
	r.ReportMissing("Objects/Props/crate.glb")

	assert.Equal(t, "! missing Objects/Characters/backpack.glb\n! missing Objects/Props/crate.glb\n", buf.String())
}

func TestMulti(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockProgressSink(ctrl)
	b := mocks.NewMockProgressSink(ctrl)

	for _, s := range []*mocks.MockProgressSink{a, b} {
		s.EXPECT().Update("Resolving loadout", 0, 1, true)
		s.EXPECT().ReportMissing("crate.glb")
		s.EXPECT().Clear()
	}

	m := progress.Multi{a, b}
	m.Update("Resolving loadout", 0, 1, true)
	m.ReportMissing("crate.glb")
	m.Clear()
}

type recordingWriter struct {
	mu      sync.Mutex
	updates int
	closed  bool
}

func (w *recordingWriter) WriteStatus(*progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates++
	return nil
}

func (w *recordingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestTape(t *testing.T) {
	w := &recordingWriter{}
	tape := progress.NewTape(w, "import explorer")

	tape.Update("Resolving loadout", 0, 2, true)
	tape.Update("Resolved hardpoint_nose", 1, 2, false)
	tape.Clear()
	tape.ReportMissing("Objects/Props/crate.glb")
	tape.Clear()
	tape.Clear()

	require.NoError(t, tape.Close())
	assert.True(t, w.closed)
}

func TestTape_DefaultTape(t *testing.T) {
	tape := progress.NewTape(progrock.NewTape(), "import")
	tape.Update("Resolving loadout", 0, 0, true)
	require.NoError(t, tape.Close())
}

func TestMilestones(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockProgressSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Update("Resolving loadout", 0, 2, true),
		sink.EXPECT().ReportMissing("crate.glb"),
		sink.EXPECT().Clear(),
	)

	m := progress.Milestones{Sink: sink}
	m.Update("Resolving loadout", 0, 2, true)
	m.Update("Resolved hardpoint_nose", 1, 2, false)
	m.ReportMissing("crate.glb")
	m.Update("Resolved hardpoint_tail", 2, 2, false)
	m.Clear()
}

func TestOpenTape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.jsonl")
	tape, err := progress.OpenTape(path, "import explorer")
	require.NoError(t, err)

	tape.Update("Resolving loadout", 0, 1, true)
	tape.ReportMissing("Objects/Props/crate.glb")
	require.NoError(t, tape.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "import explorer #1")

	_, err = progress.OpenTape(filepath.Join(t.TempDir(), "missing", "progress.jsonl"), "import")
	require.ErrorContains(t, err, domain.ErrTapeOpenFailed.Error())
}
