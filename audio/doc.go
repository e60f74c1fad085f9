// SPDX-License-Identifier: MIT

// Package audio defines the streaming decode surface of the module.
//
// # Source Interface
//
// The Source interface is what every format decoder produces:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0], streamed in
// chunks so arbitrarily long files never have to live in memory twice.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// Format keys are case-insensitive. The formats subpackages each provide
// a Decoder ready to register.
//
// # Collecting a Stream
//
// Anchor generation operates on whole signals, so a Source is usually
// drained into a signal.Buffer right after decoding:
//
//	buf, err := audio.ReadBuffer(src)
//
// ReadBuffer widens the float32 stream to float64, the sample type used
// by the signal package. DecodeBuffer combines lookup, decode and drain
// for callers that just want a file in memory.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors
// indicate problems with the underlying stream:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
