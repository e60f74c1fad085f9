// SPDX-License-Identifier: MIT

// Package anchor generates reference anchor stimuli for MUSHRA-style
// listening tests of source-separation quality.
//
// Each generator synthesizes one degraded version of a target source,
// simulating a specific artifact class from the published anchor
// methodology:
//
//   - DistortedTarget: lowpass filtering plus hard saturation of the
//     target (linear and nonlinear distortion, no interference).
//   - Artefacts: the target plus a musical-noise rendition of itself.
//   - Interference: the target plus the accompaniment (the sum of the
//     other sources) at a fixed relative level.
//   - OverallQuality: distorted target mixed with the accompaniment,
//     combining both artifact classes.
//   - TargetSoundQuality: a milder soft saturation and attenuation of
//     the target alone.
//
// The numeric parameters live in Config; DefaultConfig carries documented
// defaults derived from the methodology literature:
//
//	out, err := anchor.DistortedTarget(target)
//
//	cfg := anchor.DefaultConfig()
//	cfg.LowpassCutoff = 2000
//	out, err = cfg.DistortedTarget(target)
//
// All inputs must share one sample rate and channel count (align them with
// the signal package first); every generator returns a new buffer with the
// target's sample rate and channel count. Generators are deterministic:
// the artefact noise uses a fixed seed from Config.
//
// Generated anchors are meant to be batch-normalized together with
// signal.PreventClipping before they are written out, so their relative
// levels survive clip safety.
//
// References:
//
//	Emiya, V., Vincent, E., Harlander, N. & Hohmann, V. (2011). Subjective
//	and Objective Quality Assessment of Audio Source Separation. IEEE
//	TASLP 19(7).
//
//	Cano, E., Fitzgerald, D. & Brandenburg, K. (2016). Evaluation of
//	Quality of Sound Source Separation Algorithms: Human Perception vs
//	Quantitative Metrics. EUSIPCO 2016.
//
//	Ward, D., Wierstorf, H., Mason, R. D., Grais, E. M. & Plumbley, M. D.
//	(2018). BSS EVAL or PEASS? Predicting the Perception of Singing-Voice
//	Separation. ICASSP 2018.
package anchor
