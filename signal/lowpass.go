// SPDX-License-Identifier: MIT

package signal

import (
	"fmt"
	"math"
)

// biquadCoefficients holds the transfer function coefficients for a single
// second-order section. a0 is normalized to 1 and not stored.
type biquadCoefficients struct {
	b0, b1, b2 float64 // feedforward (numerator)
	a1, a2     float64 // feedback (denominator)
}

// biquadSection is a single second-order filter with coefficients and
// internal state, processed in Direct Form II Transposed.
type biquadSection struct {
	biquadCoefficients

	d0, d1 float64
}

func (s *biquadSection) processSample(x float64) float64 {
	y := s.b0*x + s.d0
	s.d0 = s.b1*x - s.a1*y + s.d1
	s.d1 = s.b2*x - s.a2*y

	return y
}

// lowpassRBJ designs a lowpass biquad at freq (Hz) with quality factor q,
// using the RBJ audio EQ cookbook formulation.
func lowpassRBJ(freq, q, sampleRate float64) biquadCoefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return biquadCoefficients{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}
}

// butterworthLP designs a lowpass Butterworth cascade of second-order
// sections. For odd orders the final section is first-order (b2=a2=0).
func butterworthLP(freq float64, order int, sampleRate float64) []biquadCoefficients {
	sections := make([]biquadCoefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		theta := math.Pi * float64(2*i+1) / (2 * float64(order))
		q := 1 / (2 * math.Sin(theta))
		sections = append(sections, lowpassRBJ(freq, q, sampleRate))
	}

	if order%2 != 0 {
		k := math.Tan(math.Pi * freq / sampleRate)
		norm := 1 / (1 + k)
		sections = append(sections, biquadCoefficients{
			b0: k * norm,
			b1: k * norm,
			a1: (k - 1) * norm,
		})
	}

	return sections
}

// Lowpass filters the buffer through a Butterworth lowpass cascade at the
// given cutoff frequency and order. Each channel is filtered independently
// with fresh state, so the result depends only on the input. cutoff must
// lie strictly between 0 Hz and the Nyquist frequency; order must be >= 1.
func Lowpass(buf *Buffer, cutoff float64, order int) (*Buffer, error) {
	if buf.sampleRate <= 0 {
		return nil, fmt.Errorf("lowpass: %d Hz: %w", buf.sampleRate, ErrInvalidSampleRate)
	}

	nyquist := float64(buf.sampleRate) / 2
	if cutoff <= 0 || cutoff >= nyquist || math.IsNaN(cutoff) {
		return nil, fmt.Errorf("lowpass: %v Hz: %w", cutoff, ErrInvalidCutoff)
	}

	if order < 1 {
		return nil, fmt.Errorf("lowpass: order %d: %w", order, ErrInvalidCutoff)
	}

	coeffs := butterworthLP(cutoff, order, float64(buf.sampleRate))

	out := buf.Clone()
	frames := out.Frames()

	for ch := 0; ch < out.channels; ch++ {
		sections := make([]biquadSection, len(coeffs))
		for i := range sections {
			sections[i].biquadCoefficients = coeffs[i]
		}

		for f := 0; f < frames; f++ {
			idx := f*out.channels + ch
			x := out.data[idx]
			for i := range sections {
				x = sections[i].processSample(x)
			}
			out.data[idx] = x
		}
	}

	return out, nil
}
