// SPDX-License-Identifier: EPL-2.0

package device

// DefaultAlignment is the DMA alignment unit, in bytes, assumed by outputs
// that do not impose their own. Buffer addresses and sizes handed to an
// Output are padded to this boundary.
const DefaultAlignment = 4096

// Descriptor is the small record describing one submitted buffer. Each
// cached sound owns exactly one descriptor, so two sounds in flight never
// share submission state.
type Descriptor struct {
	// Data is the full allocation, padded to the device alignment unit.
	Data []int16
	// Len is the number of meaningful samples at the head of Data.
	Len int
}

// Output is the playback hardware contract. Submit is fire-and-forget: it
// must not block on playback completion. Poll reclaims descriptors whose
// playback finished and must never block; callers drain it before reusing
// a buffer. Buffers stay valid and unmodified between Submit and the Poll
// that returns them, unless a new Submit for the same descriptor
// supersedes the old one.
type Output interface {
	// Alignment reports the required buffer alignment unit in bytes
	// (a power of two).
	Alignment() int

	Submit(d *Descriptor)

	Poll() []*Descriptor

	// Close stops the device and releases its resources.
	Close() error
}
