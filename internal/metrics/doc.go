// Package metrics implements spec.md §6's observability surface: a
// thread-safe snapshot_metrics() -> MetricsReport view over SharedBest and
// every worker's StatsCounters, plus OpenTelemetry observable instruments
// that read the same underlying atomics on each collect.
package metrics
