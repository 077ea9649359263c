package logger_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing plain text into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("some message")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("some warning")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Debug(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("resolving nested loadout")
	assert.Empty(t, buf.String(), "debug output should be hidden by default")

	lg.SetVerbose(true)
	lg.Debug("resolving nested loadout")

	g := goldie.New(t)
	g.Assert(t, "debug_verbose", buf.Bytes())

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("resolving nested loadout")
	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name:       "zerr chain",
			err:        zerr.Wrap(errors.New("underlying cause"), "wrapped message"),
			goldenName: "error_chain_zerr_two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(errors.New("test error message"))

	out := buf.String()
	assert.Contains(t, out, `"error":"test error message"`)
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.NotContains(t, out, "✗")
}

func TestCollectMessages(t *testing.T) {
	err := zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer")

	assert.Equal(t, []string{"outer layer", "middle layer", "root cause"}, logger.CollectMessages(err))
	assert.Equal(t, []string{"plain"}, logger.CollectMessages(errors.New("plain")))
	assert.Nil(t, logger.CollectMessages(nil))
}

func TestFormatChain(t *testing.T) {
	got := logger.FormatChain([]string{"outer", "inner\ndetail"})

	assert.Equal(t, "Error: outer\n\n  Caused by:\n    → inner\n      detail", got)
}
