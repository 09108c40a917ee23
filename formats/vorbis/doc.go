// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis effect sounds using
// github.com/jfreymuth/oggvorbis.
//
// The vorbis codec produces float32 samples; this wrapper quantizes them to
// the cache's signed 16-bit width during decoding (with clamping), so all
// float arithmetic is confined to load time and the play path stays
// integer-only.
//
//	decoder := vorbis.Decoder{}
//	source, err := decoder.Decode(file)
package vorbis
