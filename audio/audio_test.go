// SPDX-License-Identifier: MIT

package audio

import (
	"errors"
	"io"
	"sort"
	"testing"

	"github.com/IoSR-Surrey/source-separation-anchors/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

// failingDecoder always returns an error
type failingDecoder struct{}

func (d *failingDecoder) Decode(r io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("WAV", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed for lower-case key registered upper-case")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}
	oggDecoder := &mockDecoder{name: "ogg"}

	registry.Register("wav", wavDecoder)
	registry.Register("mp3", mp3Decoder)
	registry.Register("ogg", oggDecoder)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"wav", wavDecoder, true},
		{"mp3", mp3Decoder, true},
		{"ogg", oggDecoder, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Fatalf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}

			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned different decoder instance", tt.format)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != second {
		t.Error("Registry.Get() did not return the most recent decoder")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})
	registry.Register("mp3", &mockDecoder{})

	got := registry.Formats()
	sort.Strings(got)

	want := []string{"mp3", "wav"}
	if len(got) != len(want) {
		t.Fatalf("Registry.Formats() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Registry.Formats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
