// SPDX-License-Identifier: MIT

package signal

import (
	"fmt"
	"math"
)

// Saturate hard-clips every sample at +-threshold and normalizes the result
// by the threshold, so the transfer curve reaches full scale. The operation
// is per-sample and stateless: no lookahead, deterministic for a given
// input. threshold must be in (0, 1].
//
// Low thresholds produce the gross distortion used for the distorted-target
// anchor condition.
func Saturate(buf *Buffer, threshold float64) (*Buffer, error) {
	if err := validThreshold(threshold); err != nil {
		return nil, fmt.Errorf("saturate: %w", err)
	}

	out := buf.Clone()
	for i, x := range out.data {
		if x > threshold {
			x = threshold
		} else if x < -threshold {
			x = -threshold
		}

		out.data[i] = x / threshold
	}

	return out, nil
}

// SoftSaturate drives every sample by 1/threshold through a cubic soft-clip
// transfer, a milder saturation than the hard curve in Saturate. Per-sample
// and deterministic. threshold must be in (0, 1].
func SoftSaturate(buf *Buffer, threshold float64) (*Buffer, error) {
	if err := validThreshold(threshold); err != nil {
		return nil, fmt.Errorf("soft saturate: %w", err)
	}

	out := buf.Clone()
	for i, x := range out.data {
		out.data[i] = softClip(x / threshold)
	}

	return out, nil
}

// Attenuate applies a uniform gain reduction. factor must be in (0, 1];
// it never introduces interference or nonlinearity, only level loss.
func Attenuate(buf *Buffer, factor float64) (*Buffer, error) {
	if factor <= 0 || factor > 1 || math.IsNaN(factor) {
		return nil, fmt.Errorf("attenuate: factor %v: %w", factor, ErrInvalidGain)
	}

	return buf.Scale(factor), nil
}

// softClip is the cubic soft-clip transfer: linear-ish around zero,
// saturating smoothly toward +-1 for |x| >= 1.
func softClip(x float64) float64 {
	ax := math.Abs(x)
	if ax < 1 {
		return 1.5 * (x - (x*x*x)/3)
	}

	return math.Copysign(1, x)
}

func validThreshold(threshold float64) error {
	if threshold <= 0 || threshold > 1 || math.IsNaN(threshold) {
		return fmt.Errorf("%v: %w", threshold, ErrInvalidThreshold)
	}

	return nil
}
