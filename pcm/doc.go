// SPDX-License-Identifier: EPL-2.0

// Package pcm provides the owning sample buffer used throughout the cache.
//
// Hardware output devices require buffers whose addresses and sizes respect
// a fixed DMA alignment unit. Buffer encodes that rule once: every
// allocation is rounded up to the alignment unit, the meaningful length is
// tracked separately from the capacity, and capacity only ever grows. A
// sound that is re-encoded repeatedly at the same length therefore touches
// the allocator exactly once, on the first encode.
//
// Typical use:
//
//	buf := pcm.NewBuffer(4096, 4<<20)
//	if err := buf.Ensure(sampleCount); err != nil {
//	    return err
//	}
//	copy(buf.Data(), samples)
//	buf.SetLen(sampleCount)
//	buf.ZeroTail()
package pcm
