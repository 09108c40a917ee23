// SPDX-License-Identifier: EPL-2.0

package pcm

// Buffer owns an alignment-padded block of 16-bit PCM samples. It keeps
// the meaningful sample count separate from the allocated capacity so a
// caller can rewrite contents in place without reallocating: capacity only
// grows, and only when Ensure asks for more than is already there.
type Buffer struct {
	data  []int16
	n     int
	align int // capacity granularity in samples
	limit int // hard bound on capacity in samples, 0 = unbounded
}

// NewBuffer returns an empty buffer whose capacity will always be a
// multiple of alignBytes. alignBytes must be a positive multiple of the
// sample size (2 bytes). limitBytes bounds the largest allocation Ensure
// will attempt; 0 disables the bound.
func NewBuffer(alignBytes, limitBytes int) Buffer {
	if alignBytes < 2 {
		alignBytes = 2
	}
	return Buffer{
		align: alignBytes / 2,
		limit: limitBytes / 2,
	}
}

// Len reports the number of meaningful samples.
func (b *Buffer) Len() int { return b.n }

// Cap reports the allocated capacity in samples.
func (b *Buffer) Cap() int { return len(b.data) }

// Data exposes the full allocation, including alignment padding past Len.
func (b *Buffer) Data() []int16 { return b.data }

// Samples returns only the meaningful region of the buffer.
func (b *Buffer) Samples() []int16 { return b.data[:b.n] }

// Empty reports whether the buffer holds no meaningful samples.
func (b *Buffer) Empty() bool { return b.n == 0 }

// Ensure makes room for at least n samples, rounding the allocation up to
// the alignment unit. Capacity never shrinks; when the current allocation
// already fits it is reused untouched. If the aligned size exceeds the
// buffer's limit the old allocation is released, capacity drops to zero
// and ErrTooLarge is returned.
func (b *Buffer) Ensure(n int) error {
	needed := b.aligned(n)
	if needed <= len(b.data) {
		return nil
	}
	if b.limit > 0 && needed > b.limit {
		b.data = nil
		b.n = 0
		return ErrTooLarge
	}
	b.data = make([]int16, needed)
	return nil
}

// SetLen marks the first n samples as meaningful. n must not exceed Cap.
func (b *Buffer) SetLen(n int) {
	if n > len(b.data) {
		n = len(b.data)
	}
	b.n = n
}

// ZeroTail clears the padding between Len and the allocated capacity.
func (b *Buffer) ZeroTail() {
	tail := b.data[b.n:]
	for i := range tail {
		tail[i] = 0
	}
}

// Release drops the allocation and resets the buffer to empty.
func (b *Buffer) Release() {
	b.data = nil
	b.n = 0
}

func (b *Buffer) aligned(n int) int {
	if b.align <= 1 {
		return n
	}
	return (n + b.align - 1) / b.align * b.align
}
