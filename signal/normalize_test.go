// SPDX-License-Identifier: MIT

package signal

import (
	"math"
	"testing"
)

func TestPreventClipping_NoOpWhenInRange(t *testing.T) {
	t.Parallel()

	a := FromSamples(8000, 1, []float64{0.5, -0.9})
	b := FromSamples(8000, 1, []float64{0.2, 0.1})

	out, attenuated := PreventClipping([]*Buffer{a, b})

	if attenuated {
		t.Error("attenuated = true, want false")
	}

	// The no-op path returns the input buffers untouched
	if out[0] != a || out[1] != b {
		t.Error("no-op path did not return the input buffers")
	}
}

func TestPreventClipping_ScalesWholeBatch(t *testing.T) {
	t.Parallel()

	a := FromSamples(8000, 1, []float64{2.0, -1.0})
	b := FromSamples(8000, 1, []float64{0.5, 0.25})

	out, attenuated := PreventClipping([]*Buffer{a, b})

	if !attenuated {
		t.Fatal("attenuated = false, want true")
	}

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}

	// Global peak 2.0: everything scaled by 0.5
	want := [][]float64{{1.0, -0.5}, {0.25, 0.125}}
	for i, buf := range out {
		for j, w := range want[i] {
			if got := buf.Samples()[j]; math.Abs(got-w) > 1e-12 {
				t.Errorf("out[%d][%d] = %v, want %v", i, j, got, w)
			}
		}
	}
}

func TestPreventClipping_PeaksStayInRange(t *testing.T) {
	t.Parallel()

	a := sineBuffer(44100, 2, 4410, 440, 1.8)
	b := sineBuffer(44100, 2, 4410, 880, 0.9)

	out, _ := PreventClipping([]*Buffer{a, b})

	for i, buf := range out {
		if peak := buf.Peak(); peak > 1.0 {
			t.Errorf("out[%d].Peak() = %v, want <= 1.0", i, peak)
		}
	}
}

func TestPreventClipping_PreservesPeakRatio(t *testing.T) {
	t.Parallel()

	a := sineBuffer(44100, 1, 4410, 440, 2.0)
	b := sineBuffer(44100, 1, 4410, 880, 0.5)

	ratioBefore := a.Peak() / b.Peak()

	out, _ := PreventClipping([]*Buffer{a, b})

	ratioAfter := out[0].Peak() / out[1].Peak()
	if math.Abs(ratioBefore-ratioAfter) > 1e-9 {
		t.Errorf("peak ratio changed: %v before, %v after", ratioBefore, ratioAfter)
	}
}

func TestPreventClipping_EmptyBatch(t *testing.T) {
	t.Parallel()

	out, attenuated := PreventClipping(nil)

	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0", len(out))
	}

	if attenuated {
		t.Error("attenuated = true, want false")
	}
}
