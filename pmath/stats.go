package pmath

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmpty is returned by statistics that have no meaningful value for an
// empty sample.
var ErrEmpty = errors.New("pmath: empty sample")

// Sum returns the sum of values.
func Sum(values []float64) float64 {
	return floats.Sum(values)
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// WeightedMean returns the mean of values weighted by weights. The slices must
// have equal length; a zero total weight yields 0.
func WeightedMean(values, weights []float64) float64 {
	if len(values) == 0 || len(values) != len(weights) || floats.Sum(weights) == 0 {
		return 0
	}
	return stat.Mean(values, weights)
}

// Median returns the middle value of a sorted copy of values.
func Median(values []float64) float64 {
	return Percentile(values, 0.5)
}

// Mode returns the most frequent value and its count. When several values
// share the highest count any of them may be returned.
func Mode(values []float64) (float64, int, error) {
	if len(values) == 0 {
		return 0, 0, ErrEmpty
	}
	v, count := stat.Mode(values, nil)
	return v, int(count), nil
}

// Variance returns the unbiased sample variance. Fewer than two values yield 0.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.Variance(values, nil)
}

// PopVariance returns the population variance.
func PopVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	_, v := stat.PopMeanVariance(values, nil)
	return v
}

// StdDev returns the sample standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// PopStdDev returns the population standard deviation.
func PopStdDev(values []float64) float64 {
	return math.Sqrt(PopVariance(values))
}

// Percentile returns the p-th quantile (p in [0, 1]) using linear interpolation
// between closest ranks. values need not be sorted and is not modified.
func Percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p)
}

func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// MinMax returns the smallest and largest value.
func MinMax(values []float64) (lo, hi float64, err error) {
	if len(values) == 0 {
		return 0, 0, ErrEmpty
	}
	return floats.Min(values), floats.Max(values), nil
}

// Normalize returns a copy of values scaled so that they sum to 1. A zero sum
// returns a uniform distribution.
func Normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	sum := floats.Sum(values)
	if sum == 0 {
		for i := range out {
			out[i] = 1 / float64(len(out))
		}
		return out
	}
	copy(out, values)
	floats.Scale(1/sum, out)
	return out
}

// Histogram counts values into bins equal-width buckets spanning [lo, hi].
// Values outside the span are clamped into the first or last bucket.
func Histogram(values []float64, bins int, lo, hi float64) []int {
	if bins <= 0 {
		return nil
	}
	counts := make([]int, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		i := 0
		if width > 0 {
			i = int((v - lo) / width)
		}
		counts[Clamp(i, 0, bins-1)]++
	}
	return counts
}
