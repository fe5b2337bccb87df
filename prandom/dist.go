package prandom

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pheney/plib/pmath"
)

// Distribution is anything that draws float64 samples. Every gonum distuv
// distribution satisfies it.
type Distribution interface {
	Rand() float64
}

// Draw fills a new slice with n samples from d.
func Draw(d Distribution, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

// NormalDist returns a normal distribution sharing r's source.
func (r *Rand) NormalDist(mean, stddev float64) distuv.Normal {
	return distuv.Normal{Mu: mean, Sigma: math.Abs(stddev), Src: r.src}
}

// Normal draws from a normal distribution. A zero stddev returns mean.
func (r *Rand) Normal(mean, stddev float64) float64 {
	if stddev == 0 {
		return mean
	}
	return r.NormalDist(mean, stddev).Rand()
}

// TruncNormal draws from a normal distribution restricted to [lo, hi] by
// inverting the CDF over the bounded interval. Intervals entirely above the
// mean are sampled on the mirrored lower tail, where the CDF keeps precision.
// If the interval holds no representable mass the bound nearest the mean is
// returned.
func (r *Rand) TruncNormal(mean, stddev, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if stddev == 0 || lo == hi {
		return pmath.Clamp(mean, lo, hi)
	}
	if lo > mean {
		return 2*mean - r.TruncNormal(mean, stddev, 2*mean-hi, 2*mean-lo)
	}
	d := r.NormalDist(mean, stddev)
	plo, phi := d.CDF(lo), d.CDF(hi)
	if phi <= plo {
		return pmath.Clamp(mean, lo, hi)
	}
	v := d.Quantile(plo + r.r.Float64()*(phi-plo))
	return pmath.Clamp(v, lo, hi)
}

// Exponential draws from an exponential distribution with the given rate.
// A non-positive rate returns 0.
func (r *Rand) Exponential(rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return distuv.Exponential{Rate: rate, Src: r.src}.Rand()
}

// Poisson draws an event count from a Poisson distribution. A non-positive
// lambda returns 0.
func (r *Rand) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	return int(distuv.Poisson{Lambda: lambda, Src: r.src}.Rand())
}

// Triangular draws from a triangular distribution over [lo, hi] peaking at
// mode. mode is clamped into the bounds.
func (r *Rand) Triangular(lo, hi, mode float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo
	}
	mode = math.Min(math.Max(mode, lo), hi)
	return distuv.NewTriangle(lo, hi, mode, r.src).Rand()
}

// Beta draws from a beta distribution on [0, 1]. Non-positive shape
// parameters return 0.5.
func (r *Rand) Beta(alpha, beta float64) float64 {
	if alpha <= 0 || beta <= 0 {
		return 0.5
	}
	return distuv.Beta{Alpha: alpha, Beta: beta, Src: r.src}.Rand()
}

// LogNormal draws from a log-normal distribution whose logarithm has the
// given mean and standard deviation.
func (r *Rand) LogNormal(mu, sigma float64) float64 {
	if sigma == 0 {
		return math.Exp(mu)
	}
	return distuv.LogNormal{Mu: mu, Sigma: math.Abs(sigma), Src: r.src}.Rand()
}

// Normal draws from a normal distribution using Default.
func Normal(mean, stddev float64) float64 { return defaultRand.Normal(mean, stddev) }
