// SPDX-License-Identifier: MIT

// Package signal provides the in-memory audio buffer and the degradation
// primitives the anchor generators are built from.
//
// # Buffer
//
// Buffer holds a fixed-length multichannel signal as interleaved float64
// samples in [-1, 1] plus a sample rate. All transforms have value
// semantics: they return a new Buffer and never mutate their inputs.
//
//	buf := signal.New(44100, 2, 44100) // one second of stereo silence
//	louder := buf.Scale(1.5)
//
// # Combining signals
//
// Mix forms a weighted linear sum of buffers. Buffers must agree on sample
// rate and channel count; differing lengths are truncated to the shortest
// input rather than zero-padded:
//
//	mixed, err := signal.Mix([]*signal.Buffer{target, noise}, []float64{1, 0.5})
//
// # Degradations
//
// Saturate and SoftSaturate apply per-sample clipping transfers, Lowpass a
// Butterworth filter cascade, and SpectralDropout a seeded random zeroing
// of STFT bins (musical noise). Attenuate is a plain level reduction. Each
// is deterministic given its inputs.
//
// # Clip safety
//
// PreventClipping scans a whole batch of buffers once and applies one
// common scale factor, so relative levels between the batch members are
// preserved:
//
//	safe, attenuated := signal.PreventClipping(anchors)
//
// # Alignment helpers
//
// Resample and ConvertChannels bring differently shaped inputs to a common
// sample rate and channel count before generation. The generators
// themselves require pre-aligned inputs.
//
// # Errors
//
// Shape disagreements, empty inputs, and out-of-range parameters are
// rejected with the package's sentinel errors (ErrShapeMismatch,
// ErrEmptyInput, ErrInvalidGain, ErrInvalidThreshold, ...). Failures are
// programming or input errors; nothing is retried or silently substituted.
package signal
