// SPDX-License-Identifier: MIT

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/IoSR-Surrey/source-separation-anchors/audio"
)

// oggReader is the part of oggvorbis.Reader the source needs, split out
// so tests can substitute a fake.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis returns whole frames only, so requests are rounded down
	// to a multiple of the channel count.
	wanted := len(dst) / s.channels * s.channels
	if wanted == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:wanted])
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
