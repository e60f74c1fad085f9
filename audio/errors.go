// SPDX-License-Identifier: MIT

package audio

import "errors"

var (
	// ErrUnknownFormat reports a format key with no registered decoder.
	ErrUnknownFormat = errors.New("no decoder registered for format")
	// ErrNoData reports a source that produced zero frames.
	ErrNoData = errors.New("source produced no audio data")
)
