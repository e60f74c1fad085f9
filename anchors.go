// SPDX-License-Identifier: MIT

package ssanchors

import (
	"fmt"

	"github.com/IoSR-Surrey/source-separation-anchors/anchor"
	"github.com/IoSR-Surrey/source-separation-anchors/signal"
)

// Anchor names, also used as output file stems by the command line tool.
const (
	AnchorDistortedTarget    = "distorted_target"
	AnchorArtefacts          = "artefacts"
	AnchorInterference       = "interference"
	AnchorOverallQuality     = "overall_quality"
	AnchorTargetSoundQuality = "target_sound_quality"
)

// Anchor is a named generated signal.
type Anchor struct {
	Name   string
	Buffer *signal.Buffer
}

// Names lists every anchor in generation order.
func Names() []string {
	return []string{
		AnchorDistortedTarget,
		AnchorArtefacts,
		AnchorInterference,
		AnchorOverallQuality,
		AnchorTargetSoundQuality,
	}
}

// NeedsOthers reports whether the named anchor requires accompaniment
// sources in addition to the target.
func NeedsOthers(name string) bool {
	return name == AnchorInterference || name == AnchorOverallQuality
}

// GenerateAll produces the full anchor set for one target.
//
// Generation runs in two phases: every anchor is rendered first, then
// the whole batch is scanned once and scaled by a single common factor
// if any sample exceeds full scale. Scaling the batch together keeps
// the anchors' relative levels comparable, which is the point of a
// MUSHRA session. The returned flag reports whether that attenuation
// happened.
//
// Anchors that mix in accompaniment are skipped when others is empty.
// Any generator error aborts the batch; no partial set is returned.
func GenerateAll(target *signal.Buffer, others []*signal.Buffer, cfg anchor.Config) ([]Anchor, bool, error) {
	return GenerateNamed(target, others, cfg, Names())
}

// GenerateNamed renders the named subset of anchors, then clip-normalizes
// them as one batch. Unknown names are rejected. Like GenerateAll, it
// skips accompaniment anchors when others is empty.
func GenerateNamed(target *signal.Buffer, others []*signal.Buffer, cfg anchor.Config, names []string) ([]Anchor, bool, error) {
	anchors, err := Generate(target, others, cfg, names)
	if err != nil {
		return nil, false, err
	}

	anchors, attenuated := normalizeBatch(anchors)

	return anchors, attenuated, nil
}

// Generate renders the named anchors without the batch normalization
// phase. Callers that want clip safety should prefer GenerateAll or
// GenerateNamed.
func Generate(target *signal.Buffer, others []*signal.Buffer, cfg anchor.Config, names []string) ([]Anchor, error) {
	anchors := make([]Anchor, 0, len(names))

	for _, name := range names {
		if NeedsOthers(name) && len(others) == 0 {
			continue
		}

		var (
			buf *signal.Buffer
			err error
		)

		switch name {
		case AnchorDistortedTarget:
			buf, err = cfg.DistortedTarget(target)
		case AnchorArtefacts:
			buf, err = cfg.Artefacts(target)
		case AnchorInterference:
			buf, err = cfg.Interference(target, others)
		case AnchorOverallQuality:
			buf, err = cfg.OverallQuality(target, others)
		case AnchorTargetSoundQuality:
			buf, err = cfg.TargetSoundQuality(target)
		default:
			return nil, fmt.Errorf("generate anchors: unknown anchor %q", name)
		}

		if err != nil {
			return nil, fmt.Errorf("generate anchors: %w", err)
		}

		anchors = append(anchors, Anchor{Name: name, Buffer: buf})
	}

	return anchors, nil
}

// normalizeBatch runs the shared clip-safety pass over a rendered set.
func normalizeBatch(anchors []Anchor) ([]Anchor, bool) {
	batch := make([]*signal.Buffer, len(anchors))
	for i := range anchors {
		batch[i] = anchors[i].Buffer
	}

	scaled, attenuated := signal.PreventClipping(batch)
	for i := range anchors {
		anchors[i].Buffer = scaled[i]
	}

	return anchors, attenuated
}
