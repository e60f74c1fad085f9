// SPDX-License-Identifier: MIT

package anchor

import (
	"fmt"

	"github.com/IoSR-Surrey/source-separation-anchors/signal"
)

// DistortedTarget generates the distorted-target anchor with the default
// methodology parameters: the target lowpass filtered and driven through a
// hard saturation curve, with no interference mixed in.
func DistortedTarget(target *signal.Buffer) (*signal.Buffer, error) {
	return DefaultConfig().DistortedTarget(target)
}

// TargetSoundQuality generates the target-sound-quality anchor with the
// default parameters: a milder soft saturation plus attenuation, degrading
// the target alone without interference.
func TargetSoundQuality(target *signal.Buffer) (*signal.Buffer, error) {
	return DefaultConfig().TargetSoundQuality(target)
}

// Interference generates the interference anchor with the default
// parameters: the clean target plus the accompaniment at the configured
// level, simulating leakage of non-target material into the estimate.
func Interference(target *signal.Buffer, others []*signal.Buffer) (*signal.Buffer, error) {
	return DefaultConfig().Interference(target, others)
}

// OverallQuality generates the overall-quality anchor with the default
// parameters, combining target distortion and interference.
func OverallQuality(target *signal.Buffer, others []*signal.Buffer) (*signal.Buffer, error) {
	return DefaultConfig().OverallQuality(target, others)
}

// Artefacts generates the artefacts anchor with the default parameters:
// the clean target plus a musical-noise rendition of itself.
func Artefacts(target *signal.Buffer) (*signal.Buffer, error) {
	return DefaultConfig().Artefacts(target)
}

// Accompaniment sums the other sources into a single interference signal.
func Accompaniment(others []*signal.Buffer) (*signal.Buffer, error) {
	if len(others) == 0 {
		return nil, fmt.Errorf("accompaniment: %w", signal.ErrEmptyInput)
	}

	acc, err := signal.Sum(others)
	if err != nil {
		return nil, fmt.Errorf("accompaniment: %w", err)
	}

	return acc, nil
}

// DistortedTarget lowpass filters the target at cfg.LowpassCutoff and
// hard-saturates it at cfg.ClipThreshold. The output matches the target's
// sample rate, channel count, and duration, and is deterministic.
func (cfg Config) DistortedTarget(target *signal.Buffer) (*signal.Buffer, error) {
	if err := cfg.check(target); err != nil {
		return nil, fmt.Errorf("distorted target: %w", err)
	}

	low, err := signal.Lowpass(target, cfg.LowpassCutoff, cfg.LowpassOrder)
	if err != nil {
		return nil, fmt.Errorf("distorted target: %w", err)
	}

	out, err := signal.Saturate(low, cfg.ClipThreshold)
	if err != nil {
		return nil, fmt.Errorf("distorted target: %w", err)
	}

	return out, nil
}

// TargetSoundQuality soft-saturates the target at cfg.SoftClipThreshold
// and attenuates the result by cfg.QualityGain. No interference is
// introduced; the output shape matches the target and is deterministic.
func (cfg Config) TargetSoundQuality(target *signal.Buffer) (*signal.Buffer, error) {
	if err := cfg.check(target); err != nil {
		return nil, fmt.Errorf("target sound quality: %w", err)
	}

	soft, err := signal.SoftSaturate(target, cfg.SoftClipThreshold)
	if err != nil {
		return nil, fmt.Errorf("target sound quality: %w", err)
	}

	out, err := signal.Attenuate(soft, cfg.QualityGain)
	if err != nil {
		return nil, fmt.Errorf("target sound quality: %w", err)
	}

	return out, nil
}

// Interference mixes the clean target with the accompaniment (the unity
// sum of the other sources) at cfg.InterferenceGain. The output duration
// is the shortest of all the inputs.
func (cfg Config) Interference(target *signal.Buffer, others []*signal.Buffer) (*signal.Buffer, error) {
	if err := cfg.check(target); err != nil {
		return nil, fmt.Errorf("interference: %w", err)
	}

	acc, err := Accompaniment(others)
	if err != nil {
		return nil, fmt.Errorf("interference: %w", err)
	}

	out, err := signal.Mix([]*signal.Buffer{target, acc}, []float64{1, cfg.InterferenceGain})
	if err != nil {
		return nil, fmt.Errorf("interference: %w", err)
	}

	return out, nil
}

// OverallQuality mixes the distorted target with the accompaniment at the
// configured proportions, combining both artifact classes in one stimulus.
// The output duration is the shortest of all the inputs.
func (cfg Config) OverallQuality(target *signal.Buffer, others []*signal.Buffer) (*signal.Buffer, error) {
	if err := cfg.check(target); err != nil {
		return nil, fmt.Errorf("overall quality: %w", err)
	}

	distorted, err := cfg.DistortedTarget(target)
	if err != nil {
		return nil, fmt.Errorf("overall quality: %w", err)
	}

	acc, err := Accompaniment(others)
	if err != nil {
		return nil, fmt.Errorf("overall quality: %w", err)
	}

	out, err := signal.Mix(
		[]*signal.Buffer{distorted, acc},
		[]float64{cfg.OverallTargetGain, cfg.OverallInterferenceGain},
	)
	if err != nil {
		return nil, fmt.Errorf("overall quality: %w", err)
	}

	return out, nil
}

// Artefacts sums the clean target with a musical-noise rendition of itself
// made by zeroing cfg.NoiseFraction of its time-frequency bins. The bin
// selection is seeded by cfg.NoiseSeed, so repeated runs produce the same
// stimulus.
func (cfg Config) Artefacts(target *signal.Buffer) (*signal.Buffer, error) {
	if err := cfg.check(target); err != nil {
		return nil, fmt.Errorf("artefacts: %w", err)
	}

	noise, err := signal.SpectralDropout(target, cfg.NoiseFraction, cfg.NoiseSeed)
	if err != nil {
		return nil, fmt.Errorf("artefacts: %w", err)
	}

	out, err := signal.Mix([]*signal.Buffer{target, noise}, []float64{1, cfg.NoiseGain})
	if err != nil {
		return nil, fmt.Errorf("artefacts: %w", err)
	}

	return out, nil
}

// check validates the configuration and the target. A degenerate target is
// rejected here so every generator fails the same way.
func (cfg Config) check(target *signal.Buffer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if target == nil || target.Frames() == 0 {
		return signal.ErrEmptyInput
	}

	if target.SampleRate() <= 0 {
		return signal.ErrInvalidSampleRate
	}

	return nil
}
