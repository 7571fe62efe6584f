package hypertune

import "math"

//////
// Helper functions.
//////

// Abramowitz & Stegun 7.1.26 rational-approximation constants for erf.
const (
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
	erfP  = 0.3275911
)

// normalCDF computes the cumulative distribution function of the standard
// normal distribution using the Abramowitz–Stegun closed-form rational
// approximation of erf, accurate to roughly 7 significant digits.
//
// Returns:
// - Probability that a standard normal random variable is less than x.
func normalCDF(x float64) float64 {
	z := x / math.Sqrt2

	sign := 1.0
	if z < 0 {
		sign = -1.0
		z = -z
	}

	t := 1.0 / (1.0 + erfP*z)
	poly := t * (erfA1 + t*(erfA2+t*(erfA3+t*(erfA4+t*erfA5))))
	erf := 1.0 - poly*math.Exp(-z*z)

	return 0.5 * (1.0 + sign*erf)
}

// normalPDF computes the probability density function of the standard normal
// distribution.
//
// Returns:
// - Value of the standard normal PDF at x.
func normalPDF(x float64) float64 {
	return math.Exp(-x*x/2.0) / math.Sqrt(2.0*math.Pi)
}
