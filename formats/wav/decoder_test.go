// SPDX-License-Identifier: MIT

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// Helper function to create a minimal valid WAV file
func createWAVFile(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := uint16(numChannels) * uint16(bits/8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 0}
	wavData := createWAVFile(8000, 1, samples)

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(wavData))

	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src == nil {
		t.Fatal("Decode() returned nil source")
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}

	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400, 500, 600}
	wavData := createWAVFile(44100, 2, samples)

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(wavData))

	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestDecoder_SampleValues(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768}
	wavData := createWAVFile(8000, 1, samples)

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, want := range []float32{0, 0.5, -0.5, 1.0, -1.0} {
		if math.Abs(float64(dst[i]-want)) > 1.5/32768.0 {
			t.Errorf("sample %d = %v, want ~%v", i, dst[i], want)
		}
	}
}

func TestDecoder_PlainReaderFallback(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200}
	wavData := createWAVFile(8000, 1, samples)

	decoder := Decoder{}
	// bytes.Buffer is not an io.ReadSeeker, forcing the in-memory path.
	src, err := decoder.Decode(bytes.NewBuffer(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	invalidData := []byte("NOT A WAV FILE DATA WITH SOME PADDING BYTES")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_EOFAfterDrain(t *testing.T) {
	t.Parallel()

	samples := []int16{1, 2, 3, 4}
	wavData := createWAVFile(8000, 1, samples)

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 16)

	for range 8 {
		var n int
		n, err = src.ReadSamples(dst)
		if err != nil {
			if n == 0 && err == io.EOF {
				return
			}
			if err == io.EOF {
				continue
			}
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	t.Error("ReadSamples() never reached io.EOF")
}
