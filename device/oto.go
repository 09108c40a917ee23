// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Oto plays submitted buffers through the ebitengine/oto v3 backend. Each
// submission becomes a short-lived oto player over the descriptor's
// meaningful samples; Poll sweeps players that have stopped.
type Oto struct {
	ctx *oto.Context

	mu      sync.Mutex
	inFlight []otoSubmission
}

type otoSubmission struct {
	desc   *Descriptor
	player *oto.Player
}

// NewOto opens an oto context at the given output sample rate, stereo,
// signed 16-bit little-endian — the exact layout of baked buffers.
func NewOto(sampleRate int) (*Oto, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening oto context: %w", err)
	}
	<-ready

	return &Oto{ctx: ctx}, nil
}

func (o *Oto) Alignment() int { return DefaultAlignment }

func (o *Oto) Submit(d *Descriptor) {
	player := o.ctx.NewPlayer(&sampleReader{samples: d.Data[:d.Len]})
	player.Play()

	o.mu.Lock()
	o.inFlight = append(o.inFlight, otoSubmission{desc: d, player: player})
	o.mu.Unlock()
}

func (o *Oto) Poll() []*Descriptor {
	o.mu.Lock()
	defer o.mu.Unlock()

	var finished []*Descriptor
	kept := o.inFlight[:0]
	for _, s := range o.inFlight {
		if s.player.IsPlaying() {
			kept = append(kept, s)
			continue
		}
		s.player.Close()
		finished = append(finished, s.desc)
	}
	o.inFlight = kept

	return finished
}

func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var err error
	for _, s := range o.inFlight {
		if cerr := s.player.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	o.inFlight = nil

	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// sampleReader streams int16 samples as little-endian bytes for oto.
type sampleReader struct {
	samples []int16
	pos     int // in samples
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.samples) {
		return 0, io.EOF
	}

	n := 0
	for r.pos < len(r.samples) && n+2 <= len(p) {
		binary.LittleEndian.PutUint16(p[n:n+2], uint16(r.samples[r.pos]))
		r.pos++
		n += 2
	}

	if n == 0 {
		// caller's buffer too small to hold one sample
		return 0, io.ErrShortBuffer
	}
	return n, nil
}
