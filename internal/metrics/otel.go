package metrics

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/hailam/eternity/internal/driver"
)

// RegisterObservables registers OpenTelemetry async instruments that read
// the same SharedBest/Registry atomics Snapshot does, on every meter
// collect rather than on a push interval of their own — the search's
// counters are already lock-free and cheap to read, so there is nothing to
// gain from a separate sampling cadence.
func RegisterObservables(meter metric.Meter, sb *driver.SharedBest, reg *driver.Registry) error {
	bestDepth, err := meter.Int64ObservableGauge(
		"eternity.best_depth",
		metric.WithDescription("deepest non-hint placement count reached by any worker"),
	)
	if err != nil {
		return err
	}

	bestScore, err := meter.Int64ObservableGauge(
		"eternity.best_score_permille",
		metric.WithDescription("edge-match score (per mille) of the deepest published board"),
	)
	if err != nil {
		return err
	}

	placementsTried, err := meter.Int64ObservableCounter(
		"eternity.placements_tried_total",
		metric.WithDescription("candidate placements attempted across all workers"),
	)
	if err != nil {
		return err
	}

	backtracks, err := meter.Int64ObservableCounter(
		"eternity.backtracks_total",
		metric.WithDescription("candidate placements undone across all workers"),
	)
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			report := Snapshot(sb, reg)
			o.ObserveInt64(bestDepth, int64(report.BestDepth))
			o.ObserveInt64(bestScore, int64(report.BestScore))
			o.ObserveInt64(placementsTried, int64(report.TotalPlacementsTried))
			o.ObserveInt64(backtracks, int64(report.TotalBacktracks))
			return nil
		},
		bestDepth, bestScore, placementsTried, backtracks,
	)
	return err
}
