// Package domainstore maintains, per empty cell, the set of (tile,
// rotation) placements still compatible with that cell's occupied
// neighbors and border constraints — spec.md §3/§4.4's CellDomain and
// DomainStore.
//
// Mutations (single-pair removals and singleton-forcing replacements) are
// recorded in a stack of diff frames so a failed branch can be rolled back
// in O(|diff|) rather than by recomputing domains from scratch.
package domainstore
