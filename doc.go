// SPDX-License-Identifier: MIT

// Package ssanchors generates anchor signals for listening tests on
// audio source separation, in the style of MUSHRA (ITU-R BS.1534).
//
// An anchor is a deliberately degraded rendition of a reference signal.
// Placed alongside the systems under test, anchors pin down the low end
// of the rating scale so that scores are comparable across listeners
// and experiments. This module renders the anchor set used in source
// separation evaluation:
//
//   - distorted_target: lowpass-filtered, hard-saturated target
//   - artefacts: target plus musical noise artefacts
//   - interference: target plus the unattenuated accompaniment
//   - overall_quality: distorted target mixed with accompaniment
//   - target_sound_quality: softly saturated, attenuated target
//
// # Usage
//
// Decode the pre-aligned sources into signal.Buffer values, then:
//
//	anchors, attenuated, err := ssanchors.GenerateAll(target, others, anchor.DefaultConfig())
//	if err != nil {
//	    // Handle error
//	}
//	for _, a := range anchors {
//	    // Write a.Buffer as <a.Name>.wav
//	}
//
// All anchors of a batch are clip-normalized together by a single
// common factor, so their relative levels survive. When that happens,
// attenuated is true; experimenters usually want to note it.
//
// The anchor subpackage exposes the individual generators and their
// tuning knobs, the signal subpackage the processing primitives, and
// audio plus formats the file I/O boundary.
//
// # References
//
//   - Emiya et al. (2011), "Subjective and objective quality assessment
//     of audio source separation", IEEE TASLP 19(7).
//   - ITU-R BS.1534-3, "Method for the subjective assessment of
//     intermediate quality level of audio systems".
package ssanchors
