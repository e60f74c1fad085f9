// SPDX-License-Identifier: MIT

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding and encoding are built on github.com/go-audio/wav for robust
// chunk handling. Decoded streams come out as audio.Source; anchors are
// written back as 16-bit PCM.
//
// # Supported Formats
//
//   - PCM 8, 16, 24 and 32-bit for reading
//   - PCM 16-bit for writing
//   - Mono and multichannel, any sample rate
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("mixture.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder seeks in its input; readers that cannot seek are buffered
// into memory first.
//
// # Writing WAV Files
//
// Use Encode to write a signal.Buffer:
//
//	file, _ := os.Create("anchor_interference.wav")
//	err := wav.Encode(file, buf)
//
// Samples outside [-1, 1] are clamped, so callers normally run
// signal.PreventClipping over a batch before encoding it.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrUnsupportedWavLayout: unsupported WAV file structure
//   - ErrUnsupportedBitDepth: a bit depth outside 8/16/24/32
//   - ErrEmptySignal: Encode was handed an empty buffer
package wav
