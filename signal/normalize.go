// SPDX-License-Identifier: MIT

package signal

import "github.com/cwbudde/algo-vecmath"

// PreventClipping rescales a batch of buffers so that no sample exceeds
// digital full scale. The peak is taken across the whole batch in a single
// scan and one common factor (1/peak) is applied to every buffer, so the
// relative levels between the buffers are preserved; scaling each buffer
// independently would destroy the loudness calibration between anchor
// stimuli that listening-test protocols rely on.
//
// If nothing exceeds full scale the input buffers are returned unchanged.
// An empty batch yields an empty batch. The returned bool reports whether
// attenuation was applied.
func PreventClipping(batch []*Buffer) ([]*Buffer, bool) {
	peak := 1.0
	for _, b := range batch {
		if len(b.data) == 0 {
			continue
		}

		if p := vecmath.MaxAbs(b.data); p > peak {
			peak = p
		}
	}

	if peak <= 1.0 {
		return batch, false
	}

	gain := 1.0 / peak
	scaled := make([]*Buffer, len(batch))
	for i, b := range batch {
		scaled[i] = b.Scale(gain)
	}

	return scaled, true
}
