// SPDX-License-Identifier: EPL-2.0

// Package device defines the output-device contract the sound cache
// submits baked buffers to, and provides an oto/v3 backed implementation.
//
// The protocol has two explicit steps so each can be exercised on its own:
//
//   - Submit hands over a Descriptor (buffer, capacity, meaningful length)
//     and returns immediately; the device consumes the buffer on its own
//     schedule.
//   - Poll returns descriptors whose playback has finished, without
//     blocking. Draining Poll before rewriting a buffer is what keeps
//     in-place rebakes race-free.
//
// Buffers must respect the device's DMA alignment unit (Alignment, a
// power of two); the pcm package produces conforming allocations.
//
// Tests use a recording fake instead of real hardware; see
// internal/audiotest.
package device
