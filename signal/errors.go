// SPDX-License-Identifier: MIT

package signal

import "errors"

var (
	// ErrShapeMismatch indicates sample rate or channel count disagreement
	// between buffers passed to a combining operation.
	ErrShapeMismatch = errors.New("buffers disagree on sample rate or channel count")

	// ErrEmptyInput indicates a zero-length buffer or an empty sequence
	// where at least one element is required.
	ErrEmptyInput = errors.New("at least one non-empty input is required")

	// ErrInvalidGain indicates an out-of-range gain or attenuation factor.
	ErrInvalidGain = errors.New("gain is out of range")

	// ErrInvalidThreshold indicates a saturation threshold outside (0, 1].
	ErrInvalidThreshold = errors.New("threshold must be in (0, 1]")

	// ErrInvalidCutoff indicates a filter cutoff outside (0, Nyquist).
	ErrInvalidCutoff = errors.New("cutoff must be above 0 Hz and below the Nyquist frequency")

	// ErrInvalidFraction indicates a dropout fraction outside [0, 1].
	ErrInvalidFraction = errors.New("fraction must be in [0, 1]")

	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
