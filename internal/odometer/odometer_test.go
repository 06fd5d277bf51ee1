package odometer

import (
	"reflect"
	"testing"
)

func TestNextEnumeratesRowMajor(t *testing.T) {
	limits := []int{2, 3}
	counters := make([]int, 2)

	var got [][]int
	for {
		got = append(got, append([]int(nil), counters...))
		if !Next(counters, limits) {
			break
		}
	}

	want := [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if counters[0] != 0 || counters[1] != 0 {
		t.Fatalf("counters not reset after rollover: %v", counters)
	}
}

func TestNextEmptyCounters(t *testing.T) {
	if Next(nil, nil) {
		t.Fatal("empty counter vector should roll over immediately")
	}
	if Count(nil) != 1 {
		t.Fatalf("Count(nil) = %d, want 1", Count(nil))
	}
}

func TestNextMatchesCount(t *testing.T) {
	tests := [][]int{
		{1},
		{5},
		{1, 1, 1},
		{2, 1, 3},
		{3, 4, 2, 2},
	}

	for _, limits := range tests {
		counters := make([]int, len(limits))
		n := 1
		for Next(counters, limits) {
			n++
		}
		if n != Count(limits) {
			t.Errorf("limits %v: visited %d combinations, want %d", limits, n, Count(limits))
		}
	}
}

func TestNextCarryPropagation(t *testing.T) {
	counters := []int{0, 1, 2}
	limits := []int{2, 2, 3}

	if !Next(counters, limits) {
		t.Fatal("unexpected rollover")
	}
	if want := []int{1, 0, 0}; !reflect.DeepEqual(counters, want) {
		t.Fatalf("got %v, want %v", counters, want)
	}
}
