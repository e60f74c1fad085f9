// SPDX-License-Identifier: MIT

package anchor

import (
	"fmt"
	"math"

	"github.com/IoSR-Surrey/source-separation-anchors/signal"
)

// Default methodology parameters. The lowpass cutoff and the noise dropout
// fraction follow Emiya et al. (2011); the equal overall-quality
// proportions follow Cano et al. (2016); the soft-clip curve and
// attenuation for the target sound quality condition follow the intent of
// Ward et al. (2018). The clipping thresholds are calibration defaults:
// the papers define the artifact classes, not exact waveshaper constants,
// so these are exposed through Config rather than hard-coded.
const (
	DefaultLowpassCutoff           = 3500.0
	DefaultLowpassOrder            = 4
	DefaultClipThreshold           = 0.2
	DefaultSoftClipThreshold       = 0.6
	DefaultQualityGain             = 0.8
	DefaultInterferenceGain        = 1.0
	DefaultOverallTargetGain       = 0.5
	DefaultOverallInterferenceGain = 0.5
	DefaultNoiseFraction           = 0.99
	DefaultNoiseGain               = 1.0
	DefaultNoiseSeed               = 1
)

// Config groups every fixed gain ratio and distortion parameter of the
// anchor methodology in one place, so experiments can substitute values
// without touching the transforms.
type Config struct {
	// LowpassCutoff is the cutoff in Hz of the Butterworth lowpass applied
	// to the target for the distorted-target condition.
	LowpassCutoff float64

	// LowpassOrder is the Butterworth filter order.
	LowpassOrder int

	// ClipThreshold drives the hard saturation of the distorted target.
	ClipThreshold float64

	// SoftClipThreshold drives the milder soft saturation of the
	// target-sound-quality condition.
	SoftClipThreshold float64

	// QualityGain attenuates the target-sound-quality anchor after soft
	// saturation, in (0, 1].
	QualityGain float64

	// InterferenceGain is the accompaniment level relative to the target
	// in the interference condition. 1.0 means equally strong.
	InterferenceGain float64

	// OverallTargetGain and OverallInterferenceGain set the proportions of
	// distorted target and accompaniment in the overall-quality condition.
	OverallTargetGain       float64
	OverallInterferenceGain float64

	// NoiseFraction is the share of time-frequency bins zeroed to create
	// musical noise for the artefacts condition.
	NoiseFraction float64

	// NoiseGain is the musical-noise level relative to the target in the
	// artefacts condition.
	NoiseGain float64

	// NoiseSeed seeds the bin-selection PRNG. Fixed so that anchors are
	// reproducible across runs.
	NoiseSeed int64
}

// DefaultConfig returns the documented methodology defaults.
func DefaultConfig() Config {
	return Config{
		LowpassCutoff:           DefaultLowpassCutoff,
		LowpassOrder:            DefaultLowpassOrder,
		ClipThreshold:           DefaultClipThreshold,
		SoftClipThreshold:       DefaultSoftClipThreshold,
		QualityGain:             DefaultQualityGain,
		InterferenceGain:        DefaultInterferenceGain,
		OverallTargetGain:       DefaultOverallTargetGain,
		OverallInterferenceGain: DefaultOverallInterferenceGain,
		NoiseFraction:           DefaultNoiseFraction,
		NoiseGain:               DefaultNoiseGain,
		NoiseSeed:               DefaultNoiseSeed,
	}
}

// Validate rejects out-of-range parameters before any transform runs.
func (cfg Config) Validate() error {
	if cfg.LowpassCutoff <= 0 || math.IsNaN(cfg.LowpassCutoff) {
		return fmt.Errorf("lowpass cutoff %v Hz: %w", cfg.LowpassCutoff, signal.ErrInvalidCutoff)
	}

	if cfg.LowpassOrder < 1 {
		return fmt.Errorf("lowpass order %d: %w", cfg.LowpassOrder, signal.ErrInvalidCutoff)
	}

	if cfg.ClipThreshold <= 0 || cfg.ClipThreshold > 1 || math.IsNaN(cfg.ClipThreshold) {
		return fmt.Errorf("clip threshold %v: %w", cfg.ClipThreshold, signal.ErrInvalidThreshold)
	}

	if cfg.SoftClipThreshold <= 0 || cfg.SoftClipThreshold > 1 || math.IsNaN(cfg.SoftClipThreshold) {
		return fmt.Errorf("soft clip threshold %v: %w", cfg.SoftClipThreshold, signal.ErrInvalidThreshold)
	}

	if cfg.QualityGain <= 0 || cfg.QualityGain > 1 || math.IsNaN(cfg.QualityGain) {
		return fmt.Errorf("quality gain %v: %w", cfg.QualityGain, signal.ErrInvalidGain)
	}

	for _, g := range []float64{cfg.InterferenceGain, cfg.OverallTargetGain, cfg.OverallInterferenceGain, cfg.NoiseGain} {
		if g < 0 || math.IsNaN(g) || math.IsInf(g, 0) {
			return fmt.Errorf("gain %v: %w", g, signal.ErrInvalidGain)
		}
	}

	if cfg.NoiseFraction < 0 || cfg.NoiseFraction > 1 || math.IsNaN(cfg.NoiseFraction) {
		return fmt.Errorf("noise fraction %v: %w", cfg.NoiseFraction, signal.ErrInvalidFraction)
	}

	return nil
}
