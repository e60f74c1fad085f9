// SPDX-License-Identifier: MIT

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/IoSR-Surrey/source-separation-anchors/signal"
	"github.com/IoSR-Surrey/source-separation-anchors/utils"
)

// encodeChunkFrames is the number of frames handed to the encoder per
// Write call.
const encodeChunkFrames = 4096

// Encode writes buf as a 16-bit PCM WAV stream. Samples outside [-1, 1]
// are clamped; run the batch through signal.PreventClipping first to
// keep relative levels intact instead.
//
// The go-audio encoder patches chunk sizes after the fact, which is why
// an io.WriteSeeker is required rather than a plain writer.
func Encode(ws io.WriteSeeker, buf *signal.Buffer) error {
	if buf == nil || buf.Frames() == 0 {
		return ErrEmptySignal
	}

	enc := gowav.NewEncoder(ws, buf.SampleRate(), 16, buf.Channels(), 1)

	format := &goaudio.Format{
		NumChannels: buf.Channels(),
		SampleRate:  buf.SampleRate(),
	}

	samples := buf.Samples()
	chunk := make([]int, 0, encodeChunkFrames*buf.Channels())

	for start := 0; start < len(samples); start += cap(chunk) {
		end := min(start+cap(chunk), len(samples))

		chunk = chunk[:0]
		for _, v := range samples[start:end] {
			chunk = append(chunk, int(utils.FloatToPCM16(v)))
		}

		err := enc.Write(&goaudio.IntBuffer{
			Data:           chunk,
			Format:         format,
			SourceBitDepth: 16,
		})
		if err != nil {
			return fmt.Errorf("encoding wav data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav stream: %w", err)
	}

	return nil
}
