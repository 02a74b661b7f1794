package logging

import (
	"context"
	"log/slog"

	"github.com/sertdev/ctxscale/internal/translate"
)

// ScalingLogger writes one debug record per scaled response so the curve can
// be checked by hand against real traffic.
type ScalingLogger struct {
	logger *slog.Logger
}

// NewScalingLogger returns an observer logging to l, or to slog.Default when
// l is nil.
func NewScalingLogger(l *slog.Logger) *ScalingLogger {
	if l == nil {
		l = slog.Default()
	}
	return &ScalingLogger{logger: l}
}

// ObserveScaling implements translate.UsageObserver.
func (s *ScalingLogger) ObserveScaling(ev translate.ScalingEvent) {
	ctx := context.Background()
	if !s.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	compression := 0.0
	if ev.Scaled > 0 {
		compression = float64(ev.RawPrompt) / float64(ev.Scaled)
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "usage scaled",
		slog.String("model", ev.Model),
		slog.Int64("raw", ev.RawPrompt),
		slog.Float64("raw_pct", round1(ev.Ratio*100)),
		slog.Int64("display", ev.Scaled),
		slog.Float64("display_pct", round1(ev.DisplayRatio*100)),
		slog.Float64("compression", round1(compression)),
		slog.Int64("context_limit", ev.ContextLimit),
	)
}

func round1(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}
