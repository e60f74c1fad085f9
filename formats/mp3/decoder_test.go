// SPDX-License-Identifier: MIT

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	bytesAvailable := (len(m.samples) - m.offset) * 2
	bytesToRead := min(len(buf), bytesAvailable)

	// Only whole samples go out (even byte count).
	bytesToRead = (bytesToRead / 2) * 2
	samplesToRead := bytesToRead / 2

	for i := range samplesToRead {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(m.samples[m.offset+i]))
	}

	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return bytesToRead, io.EOF
	}

	return bytesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not MP3 data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 44100, samples: make([]int16, 100)},
		sampleRate: 44100,
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768, 0}

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 44100, samples: samples},
		sampleRate: 44100,
	}

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1.0, 0}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamples_Chunked(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16(i)
	}

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 48000, samples: samples},
		sampleRate: 48000,
	}

	var total int
	dst := make([]float32, 64)

	for {
		n, err := src.ReadSamples(dst)
		total += n

		if err == io.EOF {
			break
		}

		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}

		if n == 0 {
			t.Fatal("ReadSamples() returned 0 samples without error")
		}
	}

	if total != len(samples) {
		t.Errorf("read %d samples total, want %d", total, len(samples))
	}
}

func TestSource_ReadSamples_EmptyDst(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 44100, samples: make([]int16, 10)},
		sampleRate: 44100,
	}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_ReaderError(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockMP3Reader{sampleRate: 44100, returnErrors: true},
		sampleRate: 44100,
	}

	dst := make([]float32, 16)
	if _, err := src.ReadSamples(dst); err == nil {
		t.Error("ReadSamples() error = nil, want error from reader")
	}
}
