// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 effect sounds using github.com/hajimehoshi/go-mp3.
//
// go-mp3 already emits 16-bit little-endian PCM, so this wrapper only
// reframes bytes as int16 samples; no resampling or requantization happens
// here. Output is always stereo interleaved, which suits the cache's
// two-channel bake path directly.
//
//	decoder := mp3.Decoder{}
//	source, err := decoder.Decode(file)
//
// MP3 is a convenience format for shipped effect assets; decode cost is
// paid once at load, never on the play path.
package mp3
