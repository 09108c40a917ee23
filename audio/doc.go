// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding primitives shared by the sound cache.
//
// This package contains the building blocks every format decoder plugs into:
//   - Source interface for decoded PCM input
//   - Decoder interface for constructing sources from byte streams
//   - Registry for decoder registration by format key
//   - Collect for draining a source into a single sample slice
//
// # Source Interface
//
// The Source interface is the contract between format decoders and the
// cache's load path:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []int16) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface, so the cache loads every
// supported container through the same bounded-read loop.
//
// # Sample Format
//
// Samples are signed 16-bit PCM at the source's native channel count,
// interleaved when stereo. Decoders for narrower formats widen at decode
// time (an unsigned 8-bit byte b becomes (b-128)<<8), so everything past
// the decoder works on one sample width with no per-play conversion.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// The cache resolves decoders by file extension through a registry, and
// applications can register additional formats before loading.
//
// # Collecting
//
// Effect sounds are whole-file, bounded-size assets, so decoding is a
// drain-to-completion operation:
//
//	samples, err := audio.Collect(src, 4<<20)
//
// Collect reads in fixed-size chunks (never the whole file at once) and
// fails without a partial result if the stream errors mid-way.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors
// indicate problems with the stream and abort the surrounding load.
package audio
