package loads

import (
	"fmt"
	"math"
)

// Combination is a strength-design load combination for a hoisted load
type Combination struct {
	ID          string
	Description string
	Dead        float64 // factor on D, self weight of the hook block and rigging
	Live        float64 // factor on L, the lifted load
}

// Combinations are the gravity combinations checked for a jib-tip load
var Combinations = []Combination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// Unfactored holds the service loads at the jib tip (kN)
type Unfactored struct {
	Dead float64
	Live float64
}

// Validate rejects negative or non-finite loads
func (u Unfactored) Validate() error {
	if !(u.Dead >= 0) || math.IsInf(u.Dead, 0) {
		return fmt.Errorf("dead load must be zero or positive, got %g", u.Dead)
	}
	if !(u.Live >= 0) || math.IsInf(u.Live, 0) {
		return fmt.Errorf("live load must be zero or positive, got %g", u.Live)
	}
	return nil
}

// IsZero reports whether no load was given
func (u Unfactored) IsZero() bool {
	return u.Dead == 0 && u.Live == 0
}

// Factored returns the factored load for this combination
func (c Combination) Factored(u Unfactored) float64 {
	return c.Dead*u.Dead + c.Live*u.Live
}

// Governing finds the largest factored load among the combinations.
// The first combination wins a tie.
func Governing(u Unfactored, combinations []Combination) (float64, Combination) {
	var maxLoad float64
	var governing Combination

	for i, combo := range combinations {
		w := combo.Factored(u)
		if i == 0 || w > maxLoad {
			maxLoad = w
			governing = combo
		}
	}

	return maxLoad, governing
}
