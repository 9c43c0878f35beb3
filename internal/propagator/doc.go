// Package propagator implements arc consistency (AC-3) and singleton
// forcing over a DomainStore: spec.md §4.5's ConstraintPropagator and
// §4.6's SingletonDetector.
//
// Propagate enforces that every value remaining in a cell's domain has
// support — a concrete match against an occupied neighbor, or at least one
// candidate in an unoccupied neighbor's domain — along all four cardinal
// arcs. ForceSingletons repeatedly places any cell whose domain has
// collapsed to exactly one candidate and re-propagates, composing with
// Propagate until a fixed point (Freeman-style amplification).
package propagator
