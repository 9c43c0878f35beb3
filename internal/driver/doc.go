// Package driver implements spec.md §4.9's SharedBestTracker and §4.10's
// WorkStealingDriver: the bounded worker pool that runs many independent
// Searcher instances over their own Board/DomainStore, coordinated only
// through a shared best-depth/score record and a single cancellation flag.
// Grounded on the teacher's Engine.SearchWithLimits worker-pool/result-
// channel pattern, generalized from per-depth chess results to per-depth
// puzzle records and from a WaitGroup to golang.org/x/sync/errgroup.
package driver
