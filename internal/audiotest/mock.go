// SPDX-License-Identifier: MIT

package audiotest

import (
	"io"
	"math"

	"github.com/IoSR-Surrey/source-separation-anchors/signal"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // Total frames to generate
	generated   int // Frames generated so far
	waveform    func(frame int, channel int) float32
}

// NewMockSource creates a new mock audio source. totalFrames is the number
// of frames to generate; waveform produces the sample for a frame/channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		generated:   0,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset resets the generated frame counter to allow re-reading.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalFrames - m.generated
	framesToWrite := min(framesRequested, framesAvailable)

	for frame := range framesToWrite {
		frameIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(frameIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalFrames {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// SineBuffer generates an in-memory sine tone buffer, identical in every
// channel.
func SineBuffer(sampleRate, channels, frames int, frequency, amplitude float64) *signal.Buffer {
	data := make([]float64, frames*channels)
	for f := range frames {
		v := amplitude * math.Sin(2*math.Pi*frequency*float64(f)/float64(sampleRate))
		for c := range channels {
			data[f*channels+c] = v
		}
	}

	return signal.FromSamples(sampleRate, channels, data)
}

// ConstantBuffer generates an in-memory buffer with every sample set to
// value.
func ConstantBuffer(sampleRate, channels, frames int, value float64) *signal.Buffer {
	data := make([]float64, frames*channels)
	for i := range data {
		data[i] = value
	}

	return signal.FromSamples(sampleRate, channels, data)
}
