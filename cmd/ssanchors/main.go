// SPDX-License-Identifier: MIT

// Command ssanchors renders MUSHRA anchor files for a source separation
// listening test.
//
// Usage:
//
//	ssanchors -target vocals.wav [-others bass.wav,drums.wav] [flags]
//
// The target is the reference signal of the system under test; the
// other sources are the remaining stems of the mixture. All anchors of
// a run are clip-normalized together and written as 16-bit WAV files
// named after the anchor.
//
// Examples:
//
//	ssanchors -target vocals.wav -others bass.wav -others drums.wav
//	ssanchors -target vocals.wav -distorted-target -target-sound-quality
//	ssanchors -target vocals.wav -others rest.wav -out anchors/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ssanchors "github.com/IoSR-Surrey/source-separation-anchors"
	"github.com/IoSR-Surrey/source-separation-anchors/anchor"
	"github.com/IoSR-Surrey/source-separation-anchors/audio"
	"github.com/IoSR-Surrey/source-separation-anchors/formats/aiff"
	"github.com/IoSR-Surrey/source-separation-anchors/formats/mp3"
	"github.com/IoSR-Surrey/source-separation-anchors/formats/vorbis"
	"github.com/IoSR-Surrey/source-separation-anchors/formats/wav"
	"github.com/IoSR-Surrey/source-separation-anchors/signal"
)

// pathList collects repeatable, comma-separable path flags.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			*p = append(*p, part)
		}
	}

	return nil
}

func newRegistry() *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("oga", vorbis.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})

	return registry
}

// loadFile decodes one audio file into memory, picking the decoder by
// file extension.
func loadFile(registry *audio.Registry, path string) (*signal.Buffer, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return nil, fmt.Errorf("%s: cannot determine format without a file extension", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := audio.DecodeBuffer(registry, ext, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return buf, nil
}

// alignTo conforms a source to the target's sample rate and channel
// count so the generators can combine them sample by sample.
func alignTo(buf, target *signal.Buffer) (*signal.Buffer, error) {
	if buf.SampleRate() != target.SampleRate() {
		resampled, err := signal.Resample(buf, target.SampleRate())
		if err != nil {
			return nil, err
		}
		buf = resampled
	}

	if buf.Channels() != target.Channels() {
		remixed, err := signal.ConvertChannels(buf, target.Channels())
		if err != nil {
			return nil, err
		}
		buf = remixed
	}

	return buf, nil
}

func run() error {
	var othersPaths pathList

	targetPath := flag.String("target", "", "path to the target source (required)")
	flag.Var(&othersPaths, "others", "paths to the other sources, repeatable or comma-separated")
	outDir := flag.String("out", ".", "output directory for the anchor WAV files")

	selected := map[string]*bool{}
	for _, name := range ssanchors.Names() {
		flagName := strings.ReplaceAll(name, "_", "-")
		selected[name] = flag.Bool(flagName, false, fmt.Sprintf("generate the %s anchor", name))
	}
	all := flag.Bool("all", false, "generate every anchor (default when no anchor flag is given)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ssanchors -target <file> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders MUSHRA anchor signals for source separation listening tests.\n")
		fmt.Fprintf(os.Stderr, "Without anchor flags, every applicable anchor is generated.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *targetPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required -target flag")
	}

	var names []string
	for _, name := range ssanchors.Names() {
		if *all || *selected[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		names = ssanchors.Names()
	}

	registry := newRegistry()

	target, err := loadFile(registry, *targetPath)
	if err != nil {
		return err
	}

	others := make([]*signal.Buffer, 0, len(othersPaths))
	for _, path := range othersPaths {
		buf, err := loadFile(registry, path)
		if err != nil {
			return err
		}

		aligned, err := alignTo(buf, target)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		others = append(others, aligned)
	}

	if len(others) == 0 {
		for _, name := range names {
			if ssanchors.NeedsOthers(name) {
				fmt.Fprintf(os.Stderr, "skipping %s: no other sources supplied\n", name)
			}
		}
	}

	anchors, attenuated, err := ssanchors.GenerateNamed(target, others, anchor.DefaultConfig(), names)
	if err != nil {
		return err
	}

	if attenuated {
		fmt.Fprintln(os.Stderr, "warning: anchors exceeded full scale and were attenuated by a common factor")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	for _, a := range anchors {
		path := filepath.Join(*outDir, a.Name+".wav")

		f, err := os.Create(path)
		if err != nil {
			return err
		}

		if err := wav.Encode(f, a.Buffer); err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", path, err)
		}

		if err := f.Close(); err != nil {
			return err
		}

		fmt.Printf("wrote %s (%.2fs)\n", path, a.Buffer.Duration().Seconds())
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ssanchors: %v\n", err)
		os.Exit(1)
	}
}
