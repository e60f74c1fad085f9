// SPDX-License-Identifier: MIT

package signal

import "fmt"

// ConvertChannels returns the buffer with the given channel count.
// Multichannel input is downmixed to mono by averaging; mono input is
// duplicated into every output channel. Any other conversion is rejected
// with ErrShapeMismatch, since there is no single defensible mapping.
func ConvertChannels(buf *Buffer, channels int) (*Buffer, error) {
	if channels < 1 {
		return nil, fmt.Errorf("convert channels: %d: %w", channels, ErrShapeMismatch)
	}

	if buf.channels == channels {
		return buf.Clone(), nil
	}

	frames := buf.Frames()

	if channels == 1 {
		out := New(buf.sampleRate, 1, frames)
		inv := 1.0 / float64(buf.channels)

		switch buf.channels {
		case 2: // Stereo, most common
			for f := 0; f < frames; f++ {
				idx := f << 1
				out.data[f] = (buf.data[idx] + buf.data[idx+1]) * 0.5
			}
		default:
			for f := 0; f < frames; f++ {
				sum := 0.0
				base := f * buf.channels
				for c := 0; c < buf.channels; c++ {
					sum += buf.data[base+c]
				}
				out.data[f] = sum * inv
			}
		}

		return out, nil
	}

	if buf.channels == 1 {
		out := New(buf.sampleRate, channels, frames)
		for f := 0; f < frames; f++ {
			x := buf.data[f]
			base := f * channels
			for c := 0; c < channels; c++ {
				out.data[base+c] = x
			}
		}

		return out, nil
	}

	return nil, fmt.Errorf("convert channels: %d to %d: %w",
		buf.channels, channels, ErrShapeMismatch)
}
