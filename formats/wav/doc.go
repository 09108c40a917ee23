// SPDX-License-Identifier: EPL-2.0

// Package wav decodes the RIFF/WAVE container into 16-bit PCM samples.
//
// This is the primary on-disk format for cached effect sounds. The decoder
// is a chunk scanner: it verifies the RIFF and WAVE tags, walks the
// (tag, length) records that follow, reads the fmt descriptor and stops at
// the data chunk. Chunks it does not recognize (LIST, fact, cue and
// friends) are skipped by length, so files written by arbitrary editors
// decode fine.
//
// # Supported Formats
//
//   - Raw PCM encoding only (format tag 1)
//   - 8-bit unsigned or 16-bit signed samples
//   - Mono and stereo
//   - Any sample rate (the cache plays at the device's native rate)
//
// 8-bit input is widened at decode time: each unsigned byte b becomes
// (b-128)<<8, centering silence at zero. 16-bit input passes through as-is.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("click.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // bad tag, missing data chunk, unsupported fmt fields ...
//	}
//	samples, err := audio.Collect(source, 0)
//
// A data chunk that declares more bytes than the stream actually holds
// fails the read with io.ErrUnexpectedEOF; callers treat that as a failed
// load with no partial result.
//
// # Writing
//
// WriteWAV16 writes interleaved 16-bit PCM with a canonical 44-byte header,
// which is handy for generating fixtures and exporting baked sounds.
package wav
