// SPDX-License-Identifier: MIT

package signal

import (
	"fmt"

	"github.com/IoSR-Surrey/source-separation-anchors/utils"
)

// Resample converts the buffer to dstRate using cubic interpolation over
// four neighboring frames, preserving the channel count. When downsampling,
// a simple one-pole lowpass runs over the input first for basic
// anti-aliasing.
//
// Inputs to the anchor generators must share one sample rate; Resample is
// how callers align them beforehand.
func Resample(buf *Buffer, dstRate int) (*Buffer, error) {
	if buf.sampleRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("resample: %d Hz to %d Hz: %w",
			buf.sampleRate, dstRate, ErrInvalidSampleRate)
	}

	if dstRate == buf.sampleRate {
		return buf.Clone(), nil
	}

	srcFrames := buf.Frames()
	if srcFrames == 0 {
		return New(dstRate, buf.channels, 0), nil
	}

	ratio := float64(buf.sampleRate) / float64(dstRate)

	src := buf
	if ratio > 1 {
		src = antiAlias(buf)
	}

	dstFrames := int(float64(srcFrames) / ratio)
	out := New(dstRate, buf.channels, dstFrames)

	for f := 0; f < dstFrames; f++ {
		pos := float64(f) * ratio
		i1 := int(pos)
		alpha := pos - float64(i1)

		// Neighbor frames, clamped at the edges
		i0 := max(i1-1, 0)
		i2 := min(i1+1, srcFrames-1)
		i3 := min(i1+2, srcFrames-1)

		for ch := 0; ch < buf.channels; ch++ {
			y0 := src.Sample(i0, ch)
			y1 := src.Sample(i1, ch)
			y2 := src.Sample(i2, ch)
			y3 := src.Sample(i3, ch)

			out.data[f*buf.channels+ch] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}
	}

	return out, nil
}

// antiAlias runs a one-pole lowpass over each channel.
func antiAlias(buf *Buffer) *Buffer {
	const alpha = 0.5

	out := buf.Clone()
	frames := out.Frames()

	for ch := 0; ch < out.channels; ch++ {
		state := out.data[ch]
		for f := 1; f < frames; f++ {
			idx := f*out.channels + ch
			state = alpha*out.data[idx] + (1-alpha)*state
			out.data[idx] = state
		}
	}

	return out
}
