// SPDX-License-Identifier: MIT

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = errors.New("unsupported WAV bit depth")
	ErrEmptySignal          = errors.New("cannot encode an empty signal")
)
