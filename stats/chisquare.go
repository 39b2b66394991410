package stats

import "math"

// ChiSquare computes the Pearson chi-square statistic for a slice of observed counts.
// expected is the expected count per bin and must be > 0.
// It returns the statistic Σ (observed_i - expected)^2 / expected.
func ChiSquare(counts []int, expected float64) float64 {
	var x2 float64
	for _, o := range counts {
		diff := float64(o) - expected
		x2 += (diff * diff) / expected
	}
	return x2
}

// chiSquarePValueEven computes the upper-tail p-value P(χ² ≥ x2) for an even
// number of degrees of freedom df = 2m with the closed-form series
//
//	P(χ² ≥ x2) = e^{-x2/2} * sum_{j=0}^{m-1} (x2/2)^j / j!
func chiSquarePValueEven(x2 float64, df int) float64 {
	m := df / 2
	t := math.Exp(-x2 / 2.0)
	sum := 1.0 // j = 0
	term := 1.0
	for j := 1; j < m; j++ {
		term *= x2 / (2.0 * float64(j))
		sum += term
	}
	return t * sum
}

// chiSquarePValueApprox approximates the upper-tail p-value with the
// Wilson–Hilferty cube-root transform to a standard normal variable.
// Accuracy improves for larger df.
func chiSquarePValueApprox(x2 float64, df int) float64 {
	// z = ((x2/df)^(1/3) - (1 - 2/(9df))) / sqrt(2/(9df))
	nu := float64(df)
	z := (math.Pow(x2/nu, 1.0/3.0) - (1.0 - 2.0/(9.0*nu))) / math.Sqrt(2.0/(9.0*nu))
	phi := 0.5 * (1.0 + math.Erf(z/math.Sqrt2))
	return 1.0 - phi
}

// ChiSquarePValue returns P(χ²_df ≥ x2): exact for even df, Wilson–Hilferty
// otherwise. df <= 0 yields 1.
func ChiSquarePValue(x2 float64, df int) float64 {
	if df <= 0 {
		return 1.0
	}
	if df%2 == 0 {
		return chiSquarePValueEven(x2, df)
	}
	return chiSquarePValueApprox(x2, df)
}

// Uniformity tests counts against a uniform distribution over all bins and
// returns the chi-square statistic and its p-value. Small p-values are
// evidence against uniformity.
func Uniformity(counts []int) (x2, p float64) {
	total := 0
	for _, c := range counts {
		total += c
	}
	if len(counts) < 2 || total == 0 {
		return 0, 1
	}
	expected := float64(total) / float64(len(counts))
	x2 = ChiSquare(counts, expected)
	return x2, ChiSquarePValue(x2, len(counts)-1)
}

// Homogeneity runs a two-sample chi-square test on two histograms with the
// same bins and returns the statistic and p-value for the hypothesis that both
// were drawn from the same distribution. Bins that are empty in both
// histograms are ignored.
func Homogeneity(a, b []int) (x2, p float64) {
	n := min(len(a), len(b))
	var totalA, totalB float64
	for i := range n {
		totalA += float64(a[i])
		totalB += float64(b[i])
	}
	if totalA == 0 || totalB == 0 {
		return 0, 1
	}
	total := totalA + totalB
	bins := 0
	for i := range n {
		row := float64(a[i] + b[i])
		if row == 0 {
			continue
		}
		bins++
		ea := row * totalA / total
		eb := row * totalB / total
		da := float64(a[i]) - ea
		db := float64(b[i]) - eb
		x2 += da*da/ea + db*db/eb
	}
	return x2, ChiSquarePValue(x2, bins-1)
}
