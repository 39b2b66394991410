// Package stats holds the statistical helpers used to check generators and
// the distributions derived from them: location and spread, chi-square
// goodness-of-fit and homogeneity tests, and bootstrap comparison of two
// samples (for instance two sets of timings).
package stats

import (
	"math"
	"sort"

	"github.com/TomTonic/rnd"
	"github.com/TomTonic/rnd/engines"
	"github.com/TomTonic/rnd/seed"
)

// Median returns the median of data without modifying it. For an even number
// of elements it is the mean of the two middle ones. An empty slice yields 0.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	l := len(sorted)
	if l%2 == 0 {
		return (sorted[l/2-1] + sorted[l/2]) / 2
	}
	return sorted[l/2]
}

// Statistics returns the mean, the population variance and the standard
// deviation of data. An empty slice yields (0, -1, -1).
func Statistics(data []float64) (mean, variance, stddev float64) {
	if len(data) == 0 {
		return 0, -1, -1
	}

	var sum float64
	n := float64(len(data))

	for _, value := range data {
		sum += value
	}
	mean = sum / n

	for _, value := range data {
		variance += (value - mean) * (value - mean)
	}
	variance /= n
	stddev = math.Sqrt(variance)
	return
}

// FloatsEqualWithTolerance reports whether f1 and f2 differ by no more than
// tolerancePercentage percent of either value.
func FloatsEqualWithTolerance(f1, f2, tolerancePercentage float64) bool {
	absTol1 := math.Abs(f1 * tolerancePercentage / 100)
	if f1-absTol1 <= f2 && f1+absTol1 >= f2 {
		return true
	}
	absTol2 := math.Abs(f2 * tolerancePercentage / 100)
	if f2-absTol2 <= f1 && f2+absTol2 >= f1 {
		return true
	}
	return false
}

// partition rearranges xs[low:high+1] around the pivot xs[high] and returns its final index
func partition(xs []float64, low, high uint64) uint64 {
	pivot := xs[high]
	i := low
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[high] = xs[high], xs[i]
	return i
}

// quickselect finds the k-th smallest element (0-based index) in expected O(n) time.
// see https://en.wikipedia.org/wiki/Quickselect
func quickselect(xs []float64, k uint64, rng *rnd.XorShift64Star) float64 {
	low, high := uint64(0), uint64(len(xs)-1)
	for low <= high {
		pivotIndex := low + rng.Below(high-low+1)
		xs[pivotIndex], xs[high] = xs[high], xs[pivotIndex] // move pivot to end
		p := partition(xs, low, high)
		if p == k {
			return xs[p]
		} else if p < k {
			low = p + 1
		} else {
			high = p - 1
		}
	}
	return xs[k]
}

// QuickMedian returns the median in expected O(n) time.
// In case of an odd number of elements, it returns the middle one.
// In case of an even number of elements, it returns the higher of the two middle ones.
// An empty slice yields NaN.
// Note: This function modifies the input slice. To avoid this, pass a copy of the slice.
func QuickMedian(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	rng := rnd.NewSeeded[uint64, engines.XorShift64Star](seed.FromTime())
	return quickselect(xs, uint64(len(xs))/2, &rng)
}
