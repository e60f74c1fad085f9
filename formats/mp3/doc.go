// SPDX-License-Identifier: MIT

// Package mp3 decodes MPEG-1 Layer III streams via
// github.com/hajimehoshi/go-mp3.
//
// Decoded audio always comes out as stereo 16-bit PCM at the stream's
// native sample rate; mono files are upmixed by the underlying library.
// There is no MP3 encoder here, anchors are written as WAV.
package mp3
