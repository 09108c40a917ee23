// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"sync"

	"github.com/ik5/sfxcache/device"
)

// Submission records one Submit call with a snapshot of the buffer's
// meaningful samples taken at submission time. Snapshots let tests detect
// torn buffers: every recorded submission must contain samples scaled by a
// single volume value.
type Submission struct {
	Desc    *device.Descriptor
	Samples []int16
}

// FakeDevice is an in-memory device.Output that records submissions and
// reclaims descriptors only when the test says playback finished.
type FakeDevice struct {
	mu          sync.Mutex
	alignment   int
	submissions []Submission
	inFlight    []*device.Descriptor
	finished    []*device.Descriptor
	pollCalls   int
}

func NewFakeDevice() *FakeDevice {
	return &FakeDevice{alignment: device.DefaultAlignment}
}

func (d *FakeDevice) Alignment() int { return d.alignment }

func (d *FakeDevice) Submit(desc *device.Descriptor) {
	d.mu.Lock()
	defer d.mu.Unlock()

	snapshot := make([]int16, desc.Len)
	copy(snapshot, desc.Data[:desc.Len])

	d.submissions = append(d.submissions, Submission{Desc: desc, Samples: snapshot})
	d.inFlight = append(d.inFlight, desc)
}

func (d *FakeDevice) Poll() []*device.Descriptor {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pollCalls++
	done := d.finished
	d.finished = nil
	return done
}

func (d *FakeDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.inFlight = nil
	d.finished = nil
	return nil
}

// FinishAll marks every in-flight descriptor as played; the next Poll
// returns them.
func (d *FakeDevice) FinishAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.finished = append(d.finished, d.inFlight...)
	d.inFlight = nil
}

// Submissions returns a copy of all recorded submissions so far.
func (d *FakeDevice) Submissions() []Submission {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Submission, len(d.submissions))
	copy(out, d.submissions)
	return out
}

// SubmitCount reports how many buffers were submitted.
func (d *FakeDevice) SubmitCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.submissions)
}

// PollCalls reports how many times the cache drained the device.
func (d *FakeDevice) PollCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pollCalls
}

// OutstandingCount reports descriptors submitted but not yet reclaimed.
func (d *FakeDevice) OutstandingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.inFlight)
}
