// Package sampler draws joint sets of bounded shares that sum to one.
//
// The scheme is rejection sampling, not a constrained solver:
//
//  1. draw one uniform value per name inside its [Min, Max] range,
//  2. normalize the whole set so it sums to 1,
//  3. accept if every normalized value still lies inside its own range.
//
// After Iterations rejected draws the caller's defaults are returned unchanged
// and a warning is logged. Tight or inconsistent bounds therefore fall back to
// defaults instead of failing; callers rely on that fallback being reachable.
//
// Draws use gonum's distuv.Uniform over a math/rand/v2 source. Names are
// visited in sorted order so a fixed seed reproduces the same shares.
// A Sampler is not safe for concurrent use; create one per goroutine.
package sampler
