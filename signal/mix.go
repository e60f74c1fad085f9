// SPDX-License-Identifier: MIT

package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Mix returns the weighted linear sum of the given buffers. A nil gains
// slice applies unity gain to every buffer; otherwise gains must have one
// entry per buffer and every entry must be finite and non-negative.
//
// Buffers of different lengths are truncated to the shortest input. They
// are never zero-padded: appending artificial silence would bias the
// perceptual comparison the output is used for. All buffers must share the
// same sample rate and channel count.
func Mix(buffers []*Buffer, gains []float64) (*Buffer, error) {
	if len(buffers) == 0 {
		return nil, fmt.Errorf("mix: %w", ErrEmptyInput)
	}

	if gains != nil && len(gains) != len(buffers) {
		return nil, fmt.Errorf("mix: %d gains for %d buffers: %w",
			len(gains), len(buffers), ErrInvalidGain)
	}

	for _, g := range gains {
		if g < 0 || math.IsNaN(g) || math.IsInf(g, 0) {
			return nil, fmt.Errorf("mix: gain %v: %w", g, ErrInvalidGain)
		}
	}

	first := buffers[0]
	frames := first.Frames()

	for _, b := range buffers[1:] {
		if !first.sameShape(b) {
			return nil, fmt.Errorf("mix: %w", ErrShapeMismatch)
		}

		if b.Frames() < frames {
			frames = b.Frames()
		}
	}

	if frames == 0 {
		return nil, fmt.Errorf("mix: %w", ErrEmptyInput)
	}

	out := New(first.sampleRate, first.channels, frames)
	n := frames * first.channels
	scratch := make([]float64, n)

	for i, b := range buffers {
		gain := 1.0
		if gains != nil {
			gain = gains[i]
		}

		// out += b * gain, over the aligned region only
		if gain == 1 {
			vecmath.AddBlockInPlace(out.data, b.data[:n])
			continue
		}

		vecmath.ScaleBlock(scratch, b.data[:n], gain)
		vecmath.AddBlockInPlace(out.data, scratch)
	}

	return out, nil
}

// Sum is a unity-gain Mix.
func Sum(buffers []*Buffer) (*Buffer, error) {
	return Mix(buffers, nil)
}
