package stats

import (
	"fmt"
	"math"
	"slices"

	"github.com/TomTonic/rnd"
	"github.com/TomTonic/rnd/engines"
	"github.com/TomTonic/rnd/seed"
)

// ComparisonResult holds the confidence that sample A beats sample B by at
// least RelativeSpeedupSampleAvsSampleB.
type ComparisonResult struct {
	RelativeSpeedupSampleAvsSampleB float64
	Confidence                      float64
}

// MinimumDataPoints is the smallest sample size CompareSamples accepts.
const MinimumDataPoints uint64 = 11

// CompareSamples compares two samples of costs (e.g. nanoseconds per call)
// and computes the confidence that sample A is smaller than sample B by at
// least each of the given relative speedups. precisionLevel is the number of
// bootstrap repetitions; higher values are more precise but take longer.
// An error is returned if either sample has fewer than MinimumDataPoints values.
func CompareSamples(sampleA, sampleB []float64, relativeSpeedupsToTest []float64, precisionLevel uint64) (result []ComparisonResult, err error) {
	if uint64(len(sampleA)) < MinimumDataPoints || uint64(len(sampleB)) < MinimumDataPoints {
		return []ComparisonResult{}, fmt.Errorf("not enough data points: need at least %d values for each of A and B", MinimumDataPoints)
	}
	if len(relativeSpeedupsToTest) == 0 {
		relativeSpeedupsToTest = []float64{0.0}
	}

	thresholds := slices.Clone(relativeSpeedupsToTest)
	slices.Sort(thresholds)

	conf := BootstrapConfidence(sampleA, sampleB, thresholds, precisionLevel, 0)

	for _, t := range thresholds {
		result = append(result, ComparisonResult{
			RelativeSpeedupSampleAvsSampleB: t,
			Confidence:                      conf[t],
		})
	}
	return result, nil
}

// bootstrapSample returns a sample of len(xs) values drawn from xs with
// replacement. The input slice is not modified.
func bootstrapSample(xs []float64, rng *rnd.XorShift64Star) []float64 {
	n := len(xs)
	sample := make([]float64, n)
	if n == 0 {
		return sample
	}
	for i := range n {
		sample[i] = xs[rng.Index(n)]
	}
	return sample
}

// BootstrapConfidence estimates the probability (confidence) that the relative speedup of A over B
// meets or exceeds each requested threshold using bootstrap resampling.
//
// In each of reps replicates it resamples A and B, computes their medians and evaluates
//
//	delta = 1 - median(A_sample)/median(B_sample)
//
// A positive delta indicates A is smaller (faster) than B by that relative amount. The returned map
// holds, per threshold, the fraction of replicates with delta >= threshold.
//
// Edge cases:
//   - reps == 0 maps every threshold to NaN.
//   - a replicate with a NaN median counts towards no threshold.
//   - a median of B that is zero or tiny is replaced by a scale-aware epsilon, so delta stays finite.
//   - equal medians (including equal infinities) give delta = 0.
//
// prngSeed seeds the resampling stream; 0 picks a seed from operating system entropy.
// All replicates share one stream, so a fixed seed reproduces the whole result.
func BootstrapConfidence(A, B []float64, thresholds []float64, reps uint64, prngSeed uint64) (confidenceForThreshold map[float64]float64) {
	confidenceForThreshold = make(map[float64]float64, len(thresholds))

	if reps == 0 {
		for _, threshold := range thresholds {
			confidenceForThreshold[threshold] = math.NaN()
		}
		return confidenceForThreshold
	}

	if prngSeed == 0 {
		prngSeed = seed.FromSystemEntropy()
	}
	rng := rnd.NewSeeded[uint64, engines.XorShift64Star](prngSeed)

	counts := make(map[float64]uint32, len(thresholds))

	for range reps {
		medA := QuickMedian(bootstrapSample(A, &rng))
		medB := QuickMedian(bootstrapSample(B, &rng))
		delta := relativeDelta(medA, medB)
		for _, threshold := range thresholds {
			if delta >= threshold {
				counts[threshold]++
			}
		}
	}

	for _, threshold := range thresholds {
		confidenceForThreshold[threshold] = float64(counts[threshold]) / float64(reps)
	}
	return confidenceForThreshold
}

func relativeDelta(medA, medB float64) float64 {
	switch {
	case math.IsNaN(medA) || math.IsNaN(medB):
		return math.NaN()
	case medA == medB:
		return 0.0
	}
	const rel = 1e-12
	eps := math.Max(math.Abs(medB)*rel, math.SmallestNonzeroFloat64)
	denom := medB
	if math.Abs(medB) < eps {
		denom = eps
	}
	return 1.0 - medA/denom
}
