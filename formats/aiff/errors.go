// SPDX-License-Identifier: MIT

package aiff

import "errors"

var (
	ErrNotAiffFile           = errors.New("not an AIFF file")
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
	ErrUnsupportedBitDepth   = errors.New("unsupported AIFF bit depth")
)
