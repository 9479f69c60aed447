package sampler_test

import (
	"fmt"

	"github.com/katalvlaran/pathways/sampler"
)

// ExampleSample draws two shares that must each stay within [0.3, 0.7].
func ExampleSample() {
	ranges := map[string]sampler.Range{
		"wind":  {Min: 0.3, Max: 0.7},
		"solar": {Min: 0.3, Max: 0.7},
	}
	defaults := map[string]float64{"wind": 0.5, "solar": 0.5}

	shares, ok := sampler.Sample(ranges, defaults, sampler.WithSeed(1))
	fmt.Printf("accepted=%v sum=%.3f\n", ok, shares["wind"]+shares["solar"])

	// Output:
	// accepted=true sum=1.000
}
