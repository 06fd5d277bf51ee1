// Package odometer implements a mixed-radix ripple-carry counter used to
// enumerate every combination of a set of bounded indices in row-major
// order (the last counter varies fastest).
package odometer

// Next advances counters by one position. The last counter is incremented;
// when counters[d] reaches limits[d] it is reset to 0 and the carry moves to
// counters[d-1].
//
// Next returns false once the carry runs past the first counter, i.e. every
// combination has been visited. In that case all counters are back at 0.
// An empty counter vector has exactly one combination, so Next returns false
// immediately.
func Next(counters, limits []int) bool {
	for d := len(counters) - 1; d >= 0; d-- {
		counters[d]++
		if counters[d] < limits[d] {
			return true
		}
		counters[d] = 0
	}
	return false
}

// Count returns the number of combinations Next enumerates for limits,
// starting from all-zero counters.
func Count(limits []int) int {
	n := 1
	for _, l := range limits {
		n *= l
	}
	return n
}
