// SPDX-License-Identifier: MIT

package audio

import (
	"fmt"
	"io"

	"github.com/IoSR-Surrey/source-separation-anchors/signal"
)

// readBufSize is the chunk size, in float32 values, used when draining a
// source into memory.
const readBufSize = 4096

// ReadBuffer drains src into an in-memory signal.Buffer. The streamed
// float32 samples are widened to float64 so the result can feed the
// processing primitives in the signal package.
//
// The source is read until io.EOF but not closed; that stays with the
// caller. A source that ends before producing a single frame yields
// ErrNoData.
func ReadBuffer(src Source) (*signal.Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("read buffer: %w", ErrNoData)
	}

	var data []float64
	buf := make([]float32, readBufSize)

	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			data = append(data, float64(v))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read buffer: %w", err)
		}
	}

	if len(data) < channels {
		return nil, fmt.Errorf("read buffer: %w", ErrNoData)
	}

	return signal.FromSamples(src.SampleRate(), channels, data), nil
}

// DecodeBuffer looks up a decoder in the registry and reads the whole
// stream into memory. The decoded source is closed before returning.
func DecodeBuffer(reg *Registry, format string, r io.Reader) (*signal.Buffer, error) {
	dec, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("decode %q: %w", format, ErrUnknownFormat)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", format, err)
	}
	defer src.Close()

	return ReadBuffer(src)
}
