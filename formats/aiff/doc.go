// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF effect sounds via the github.com/go-audio/aiff
// library.
//
// Supported input is PCM at 8 or 16 bits per sample, mono or stereo. AIFF
// 8-bit samples are signed (unlike WAV), so widening is a plain left shift.
//
//	decoder := aiff.Decoder{}
//	source, err := decoder.Decode(file)
//
// go-audio needs an io.ReadSeeker; a plain reader is buffered in memory
// first, which is acceptable for bounded-size effect assets.
package aiff
