// SPDX-License-Identifier: MIT

package utils

// FloatToPCM16 converts a normalized sample in [-1, 1] to 16-bit PCM.
func FloatToPCM16(x float64) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// PCMToFloat converts an integer PCM sample to a normalized value in [-1, 1]
// given the source bit depth. Unknown depths fall back to 16-bit scaling.
func PCMToFloat(v int, bitDepth int) float64 {
	var maxVal float64
	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0
	}

	return float64(v) / maxVal
}
