// SPDX-License-Identifier: MIT

package signal

import (
	"fmt"
	"math"
	"math/rand"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const (
	dropoutFrameSize = 2048
	dropoutHopSize   = dropoutFrameSize / 2
	dropoutNormFloor = 1e-12
)

// SpectralDropout zeroes a random fraction of the time-frequency bins of
// the signal, producing the "musical noise" degradation used for artefact
// anchor conditions. Analysis uses a periodic Hann window at 50% overlap
// with overlap-add resynthesis; conjugate bin pairs are always dropped
// together so the output stays real.
//
// Bin selection is driven by a PRNG seeded with seed, so the output is
// reproducible: identical input, fraction, and seed yield identical output.
// fraction must be in [0, 1].
func SpectralDropout(buf *Buffer, fraction float64, seed int64) (*Buffer, error) {
	if fraction < 0 || fraction > 1 || math.IsNaN(fraction) {
		return nil, fmt.Errorf("spectral dropout: %v: %w", fraction, ErrInvalidFraction)
	}

	frames := buf.Frames()
	if frames == 0 {
		return nil, fmt.Errorf("spectral dropout: %w", ErrEmptyInput)
	}

	plan, err := algofft.NewPlan64(dropoutFrameSize)
	if err != nil {
		return nil, fmt.Errorf("spectral dropout: creating FFT plan: %w", err)
	}

	window := hannPeriodic(dropoutFrameSize)
	rng := rand.New(rand.NewSource(seed))

	out := New(buf.sampleRate, buf.channels, frames)

	// One padded scratch set per call; channels processed sequentially so
	// the PRNG consumption order is fixed.
	padded := frames + dropoutFrameSize
	channel := make([]float64, padded)
	acc := make([]float64, padded)
	winsum := make([]float64, padded)
	frame := make([]float64, dropoutFrameSize)
	spectrum := make([]complex128, dropoutFrameSize)

	for ch := 0; ch < buf.channels; ch++ {
		for i := range channel {
			channel[i] = 0
		}
		for f := 0; f < frames; f++ {
			channel[f] = buf.data[f*buf.channels+ch]
		}

		for i := range acc {
			acc[i] = 0
			winsum[i] = 0
		}

		for start := 0; start+dropoutFrameSize <= padded; start += dropoutHopSize {
			vecmath.MulBlock(frame, channel[start:start+dropoutFrameSize], window)

			for i, x := range frame {
				spectrum[i] = complex(x, 0)
			}

			if err := plan.Forward(spectrum, spectrum); err != nil {
				return nil, fmt.Errorf("spectral dropout: forward FFT: %w", err)
			}

			// Drop bins pairwise across the conjugate mirror.
			for k := 0; k <= dropoutFrameSize/2; k++ {
				if rng.Float64() >= fraction {
					continue
				}

				spectrum[k] = 0
				if k > 0 && k < dropoutFrameSize/2 {
					spectrum[dropoutFrameSize-k] = 0
				}
			}

			if err := plan.Inverse(spectrum, spectrum); err != nil {
				return nil, fmt.Errorf("spectral dropout: inverse FFT: %w", err)
			}

			for i := range frame {
				acc[start+i] += real(spectrum[i]) * window[i]
				winsum[start+i] += window[i] * window[i]
			}
		}

		for f := 0; f < frames; f++ {
			if winsum[f] > dropoutNormFloor {
				out.data[f*buf.channels+ch] = acc[f] / winsum[f]
			}
		}
	}

	return out, nil
}

// hannPeriodic returns a periodic Hann window of the given length.
func hannPeriodic(length int) []float64 {
	w := make([]float64, length)
	for n := range w {
		w[n] = 0.5 * (1 - math.Cos(2*math.Pi*float64(n)/float64(length)))
	}

	return w
}
