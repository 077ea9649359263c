package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/telemetry"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/app"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader *mocks.MockConfigLoader
	opener *mocks.MockRecordCatalogOpener
	logger *mocks.MockLogger
}

func newProvider(t *testing.T) (*harness, ComponentProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader: mocks.NewMockConfigLoader(ctrl),
		opener: mocks.NewMockRecordCatalogOpener(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	application := app.New(
		h.loader,
		h.opener,
		mocks.NewMockSceneStore(ctrl),
		mocks.NewMockAssetSource(ctrl),
		mocks.NewMockProgressSink(ctrl),
		telemetry.NewNoOpTracer(),
		h.logger,
	)

	return h, func(context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: h.logger,
		}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	_, provider := newProvider(t)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}

// TestRun_Failure verifies that command errors are logged and produce exit code 1.
func TestRun_Failure(t *testing.T) {
	h, provider := newProvider(t)
	h.loader.EXPECT().Load(gomock.Any()).Return(domain.Settings{}, domain.ErrConfigParseFailed)
	h.logger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"records", "show", "explorer"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Interrupted verifies that cancellation is reported without logging an error.
func TestRun_Interrupted(t *testing.T) {
	h, provider := newProvider(t)
	h.loader.EXPECT().Load(gomock.Any()).Return(domain.Settings{RecordsPath: "records.db"}, nil)
	h.opener.EXPECT().Open(gomock.Any(), "records.db").Return(nil, context.Canceled)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"records", "ingest", "ships.json"}, stderr, provider)
	assert.Equal(t, 130, exitCode)
	assert.Equal(t, "interrupted\n", stderr.String())
}

// TestRun_ProviderError verifies initialization failures are printed to stderr.
func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("graft failure")
	}

	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: graft failure\n", stderr.String())
}

// TestRun_Options verifies app options are applied before execution.
func TestRun_Options(t *testing.T) {
	_, provider := newProvider(t)
	applied := false

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider, func(a *app.App) {
		applied = a != nil
	})
	assert.Equal(t, 0, exitCode)
	assert.True(t, applied)
}
