package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/spacefolio/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics are the simulation instruments, no-ops until a provider is installed
type Metrics struct {
	frames      metric.Int64Counter
	transitions metric.Int64Counter
	speed       metric.Float64Histogram
}

// NewMetrics registers the simulation instruments on the global meter provider
func NewMetrics() (*Metrics, error) {
	m := meter()
	var (
		out Metrics
		err error
	)

	out.frames, err = m.Int64Counter(
		"spacefolio.sim.frames",
		metric.WithDescription("Simulation frames stepped"),
	)
	if err != nil {
		return nil, fmt.Errorf("frames counter: %w", err)
	}

	out.transitions, err = m.Int64Counter(
		"spacefolio.sim.events",
		metric.WithDescription("Simulation events emitted by type"),
	)
	if err != nil {
		return nil, fmt.Errorf("events counter: %w", err)
	}

	out.speed, err = m.Float64Histogram(
		"spacefolio.craft.speed",
		metric.WithDescription("Craft speed per frame"),
		metric.WithUnit("{unit}/frame"),
	)
	if err != nil {
		return nil, fmt.Errorf("speed histogram: %w", err)
	}

	return &out, nil
}

func (m *Metrics) recordFrame(ctx context.Context, speed float64, mode Mode) {
	if m == nil {
		return
	}
	modeAttr := metric.WithAttributes(attribute.String("mode", mode.String()))
	m.frames.Add(ctx, 1, modeAttr)
	m.speed.Record(ctx, speed, modeAttr)
}

func (m *Metrics) recordEvent(ctx context.Context, ev Event) {
	if m == nil {
		return
	}
	m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("type", ev.Type.String())))
}
