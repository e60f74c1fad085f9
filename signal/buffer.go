// SPDX-License-Identifier: MIT

package signal

import (
	"time"

	"github.com/cwbudde/algo-vecmath"
)

// Buffer is a fixed-length multichannel PCM signal held in memory.
// Samples are interleaved float64 values in [-1, 1], frames x channels.
//
// Buffers have value semantics: every transform in this package returns a
// new Buffer and never mutates its inputs.
type Buffer struct {
	data       []float64
	sampleRate int
	channels   int
}

// New returns a silent Buffer with the given shape.
func New(sampleRate, channels, frames int) *Buffer {
	if frames < 0 {
		frames = 0
	}

	return &Buffer{
		data:       make([]float64, frames*channels),
		sampleRate: sampleRate,
		channels:   channels,
	}
}

// FromSamples wraps interleaved samples without copying. Trailing samples
// that do not form a whole frame are dropped.
func FromSamples(sampleRate, channels int, samples []float64) *Buffer {
	if channels > 0 {
		samples = samples[:len(samples)-len(samples)%channels]
	}

	return &Buffer{
		data:       samples,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

// SampleRate of the signal in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Channels count (e.g., 1=mono, 2=stereo).
func (b *Buffer) Channels() int { return b.channels }

// Frames is the per-channel sample count.
func (b *Buffer) Frames() int {
	if b.channels == 0 {
		return 0
	}

	return len(b.data) / b.channels
}

// Samples returns the interleaved backing slice. Callers must treat it as
// read-only; transforms rely on buffers never being mutated.
func (b *Buffer) Samples() []float64 { return b.data }

// Sample returns the value at the given frame and channel.
func (b *Buffer) Sample(frame, channel int) float64 {
	return b.data[frame*b.channels+channel]
}

// Duration of the signal.
func (b *Buffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(b.Frames()) / float64(b.sampleRate) * float64(time.Second))
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	data := make([]float64, len(b.data))
	copy(data, b.data)

	return &Buffer{
		data:       data,
		sampleRate: b.sampleRate,
		channels:   b.channels,
	}
}

// Trim returns a copy truncated to at most frames frames.
func (b *Buffer) Trim(frames int) *Buffer {
	if frames < 0 {
		frames = 0
	}

	if frames > b.Frames() {
		frames = b.Frames()
	}

	data := make([]float64, frames*b.channels)
	copy(data, b.data[:frames*b.channels])

	return &Buffer{
		data:       data,
		sampleRate: b.sampleRate,
		channels:   b.channels,
	}
}

// Scale returns a copy with every sample multiplied by gain.
func (b *Buffer) Scale(gain float64) *Buffer {
	out := New(b.sampleRate, b.channels, b.Frames())
	if len(b.data) > 0 {
		vecmath.ScaleBlock(out.data, b.data, gain)
	}

	return out
}

// Peak returns the maximum absolute sample value, 0 for an empty buffer.
func (b *Buffer) Peak() float64 {
	if len(b.data) == 0 {
		return 0
	}

	return vecmath.MaxAbs(b.data)
}

// sameShape reports whether two buffers can be combined directly.
func (b *Buffer) sameShape(other *Buffer) bool {
	return b.sampleRate == other.sampleRate && b.channels == other.channels
}
