// SPDX-License-Identifier: MIT

// Package vorbis decodes Ogg Vorbis streams via
// github.com/jfreymuth/oggvorbis.
//
// The library already produces interleaved float32 samples, so decoding
// is a thin adapter onto the audio.Source interface. Reads always return
// whole frames.
package vorbis
