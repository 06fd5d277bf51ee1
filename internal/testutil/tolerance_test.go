package testutil

import (
	"math"
	"testing"
)

func TestRequireNearlyEqual(t *testing.T) {
	RequireNearlyEqual(t, 1.0, 1.0+1e-12, 1e-9)
	RequireNearlyEqual(t, math.NaN(), math.NaN(), 0)
	RequireNearlyEqual(t, math.Inf(1), math.Inf(1), 0)
	RequireNearlyEqual(t, math.Inf(-1), math.Inf(-1), 0)
}
