// Package shares redistributes technosphere output shares between competing
// technologies according to a scenario.
//
// A scenario Tree is nested category → region → technology. Each technology
// carries per-year share parameters and, optionally, the technosphere row
// (Idx) that implements it:
//
//	electricity:
//	  DE:
//	    wind:
//	      idx: 5
//	      2020: {value: 0.6}
//	      2050: {min: 0.5, max: 0.9, distribution: uniform}
//	    coal:
//	      idx: 6
//	      2020: {value: 0.4}
//	      2050: {min: 0.0, max: 0.3, distribution: uniform}
//
// Adjust recomputes, for every (category, region) group, the amount each
// technology contributes to every product column the group feeds:
//
//	amount = Σ base[techRow, col] × share
//
// At BaseYear the shares are the scenario values. For any other year one set
// of shares per group is drawn with the constrained sampler, bounded by the
// BoundsYear minimum and the target-year maximum. Only "uniform" bounds are
// supported; anything else aborts the whole pass.
//
// The result is an Overlay, never a mutation of the base arrays. How the
// overlay merges with the base matrix (replace or add) is the caller's choice
// (see datapackage.ApplyArray).
package shares
