// SPDX-License-Identifier: MIT

// Package aiff decodes AIFF audio files via github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - PCM 8, 16, 24 and 32-bit
//   - Mono and multichannel, any sample rate
//
// # Decoding
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("vocals.aiff")
//	source, err := decoder.Decode(file)
//
// The decoder seeks in its input; readers that cannot seek are buffered
// into memory first. Samples come out as float32 in [-1.0, 1.0],
// normalized by the file's bit depth.
package aiff
