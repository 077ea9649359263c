package telemetry

import (
	"context"
	"fmt"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TimingProcessor implements sdktrace.SpanProcessor by logging the duration
// and status of every finished span at debug level.
type TimingProcessor struct {
	logger ports.Logger
}

var _ sdktrace.SpanProcessor = (*TimingProcessor)(nil)

// NewTimingProcessor returns a TimingProcessor writing to logger.
func NewTimingProcessor(logger ports.Logger) *TimingProcessor {
	return &TimingProcessor{logger: logger}
}

// OnStart does nothing.
func (p *TimingProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the finished span.
func (p *TimingProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	d := s.EndTime().Sub(s.StartTime())
	if s.Status().Code == codes.Error {
		p.logger.Debug(fmt.Sprintf("%s failed after %v: %s", s.Name(), d, s.Status().Description))
		return
	}
	p.logger.Debug(fmt.Sprintf("%s took %v", s.Name(), d))
}

// ForceFlush does nothing.
func (p *TimingProcessor) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *TimingProcessor) Shutdown(_ context.Context) error {
	return nil
}

// NewProvider creates an SDK tracer provider feeding processors.
func NewProvider(processors ...sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	return sdktrace.NewTracerProvider(opts...)
}
