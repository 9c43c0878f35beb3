package cellselect

import (
	"fmt"
	"math/rand"

	"github.com/hailam/eternity/internal/bitset"
)

// Policy is the within-cell candidate ordering policy of spec.md §4.7. It
// affects only the order a cell's domain is tried in, never correctness.
type Policy int

const (
	Ascending Policy = iota
	Descending
	FixedRandom
)

// String returns the policy's flag-compatible name.
func (p Policy) String() string {
	switch p {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	case FixedRandom:
		return "fixed-random"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a CLI/config flag value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "ascending":
		return Ascending, nil
	case "descending":
		return Descending, nil
	case "fixed-random":
		return FixedRandom, nil
	default:
		return 0, fmt.Errorf("cellselect: unknown piece-order policy %q", s)
	}
}

// Orderer applies a Policy to a cell's domain, producing the slot order the
// search tries candidates in. A FixedRandom orderer carries its own RNG,
// seeded once at worker startup so its shuffles are reproducible from that
// seed across a resumed run.
//
// diversifyK/rng additionally implement spec.md §4.10's per-worker seeded
// restart diversification: a driver running several workers on the same
// piece-order policy gives each a distinct seed, and for the first
// diversifyK calls to Order, the configured policy is overridden by a
// shuffle from that seed. This perturbs only the top few recursion levels
// of each worker's search, which is enough to decorrelate their paths
// without abandoning the configured ordering for the rest of the tree.
type Orderer struct {
	policy     Policy
	rng        *rand.Rand
	diversifyK int
	calls      int
}

// NewOrderer builds an Orderer for policy. seed is only consumed by
// FixedRandom; it is ignored (and may be zero) for the other policies.
func NewOrderer(policy Policy, seed int64) *Orderer {
	o := &Orderer{policy: policy}
	if policy == FixedRandom {
		o.rng = rand.New(rand.NewSource(seed))
	}
	return o
}

// NewDiversified builds an Orderer that applies policy normally, except the
// first k calls to Order are shuffled with a RNG seeded from seed — per-
// worker diversification for policies other than FixedRandom (which is
// already seed-diversified via NewOrderer's seed).
func NewDiversified(policy Policy, seed int64, k int) *Orderer {
	o := NewOrderer(policy, seed)
	if policy != FixedRandom {
		o.rng = rand.New(rand.NewSource(seed))
	}
	o.diversifyK = k
	return o
}

// Order returns domain's member slots in the order the search should try
// them. Ascending and Descending sort by raw slot number (a proxy for
// (dense tile index, rotation), i.e. tile id order); FixedRandom shuffles
// with the orderer's seeded RNG. A non-FixedRandom Orderer built with
// NewDiversified shuffles instead for its first diversifyK calls.
func (o *Orderer) Order(domain bitset.Set) []int {
	slots := domain.Slice()
	o.calls++

	if o.policy == FixedRandom || (o.calls <= o.diversifyK && o.diversifyK > 0) {
		o.rng.Shuffle(len(slots), func(i, j int) {
			slots[i], slots[j] = slots[j], slots[i]
		})
		return slots
	}

	if o.policy == Descending {
		for i, j := 0, len(slots)-1; i < j; i, j = i+1, j-1 {
			slots[i], slots[j] = slots[j], slots[i]
		}
	}
	// Ascending: Slice() already yields ascending slot order.
	return slots
}
