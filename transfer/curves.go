// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transfer

import stdmath "math"

const (
	srgbLinearThreshold = 0.04045
	srgbGammaThreshold  = 0.0031308

	rec709Alpha = 1.099
	rec709Beta  = 0.018

	smpte240Alpha = 1.1115
	smpte240Beta  = 0.0228

	smpte428Scale = 52.37 / 48.0

	log100Cutoff       = 0.01
	log100Sqrt10Cutoff = 0.0031622776601683794 // √10 / 1000

	pqM1 = 0.1593017578125
	pqM2 = 78.84375
	pqC1 = 0.8359375
	pqC2 = 18.8515625
	pqC3 = 18.6875

	hlgA = 0.17883277
	hlgB = 0.28466892
	hlgC = 0.55991073
)

func srgbLinearize(v float64) float64 {
	if v <= srgbLinearThreshold {
		return v / 12.92
	}
	return stdmath.Pow((v+0.055)/1.055, 2.4)
}

func srgbGamma(v float64) float64 {
	if v <= srgbGammaThreshold {
		return v * 12.92
	}
	return 1.055*stdmath.Pow(v, 1/2.4) - 0.055
}

// rec709Linearize covers the Rec.709 family: a linear toe of the given
// slope below slope*beta and an offset 0.45 power law above it.
func rec709Linearize(v, alpha, beta, slope float64) float64 {
	if v < slope*beta {
		return v / slope
	}
	return stdmath.Pow((v+alpha-1)/alpha, 1/0.45)
}

func rec709Gamma(v, alpha, beta, slope float64) float64 {
	if v < beta {
		return v * slope
	}
	return alpha*stdmath.Pow(v, 0.45) - (alpha - 1)
}

// iecLinearize is the xvYCC extension of Rec.709: the curve is mirrored
// for negative samples.
func iecLinearize(v float64) float64 {
	if v < -4.5*rec709Beta {
		return -stdmath.Pow((-v+rec709Alpha-1)/rec709Alpha, 1/0.45)
	}
	if v <= 4.5*rec709Beta {
		return v / 4.5
	}
	return stdmath.Pow((v+rec709Alpha-1)/rec709Alpha, 1/0.45)
}

func iecGamma(v float64) float64 {
	if v <= -rec709Beta {
		return -(rec709Alpha*stdmath.Pow(-v, 0.45) - (rec709Alpha - 1))
	}
	if v < rec709Beta {
		return v * 4.5
	}
	return rec709Alpha*stdmath.Pow(v, 0.45) - (rec709Alpha - 1)
}

func smpte428Linearize(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return stdmath.Pow(v, 2.6) * smpte428Scale
}

func smpte428Gamma(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return stdmath.Pow(v/smpte428Scale, 1/2.6)
}

// logLinearize inverts 1 + log10(v)/div. Zero and negative codes decode
// to black.
func logLinearize(v, div float64) float64 {
	if v <= 0 {
		return 0
	}
	return stdmath.Pow(10, (v-1)*div)
}

func logGamma(v, div, cutoff float64) float64 {
	if v < cutoff {
		return 0
	}
	return 1 + stdmath.Log10(v)/div
}

// pqLinearize is the ST 2084 EOTF normalized so 1.0 is 10000 nits.
func pqLinearize(v float64) float64 {
	if v <= 0 {
		return 0
	}
	p := stdmath.Pow(v, 1/pqM2)
	num := max(p-pqC1, 0)
	return stdmath.Pow(num/(pqC2-pqC3*p), 1/pqM1)
}

func pqGamma(v float64) float64 {
	if v <= 0 {
		return 0
	}
	p := stdmath.Pow(v, pqM1)
	return stdmath.Pow((pqC1+pqC2*p)/(1+pqC3*p), pqM2)
}

func hlgLinearize(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v <= 0.5 {
		return v * v / 3
	}
	return (stdmath.Exp((v-hlgC)/hlgA) + hlgB) / 12
}

func hlgGamma(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v <= 1.0/12.0 {
		return stdmath.Sqrt(3 * v)
	}
	return hlgA*stdmath.Log(12*v-hlgB) + hlgC
}

func powerCurve(v, exp float64) float64 {
	if v <= 0 {
		return 0
	}
	return stdmath.Pow(v, exp)
}
