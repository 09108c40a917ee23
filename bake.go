// SPDX-License-Identifier: EPL-2.0

package sfxcache

import "fmt"

// bakeLocked recomputes the hardware-ready stereo buffer from ent's raw
// samples at the current effective volume. Caller must hold e.mu.
//
// A sound's sample count never changes between rebakes, and baked capacity
// never shrinks, so after the first bake this runs entirely in the
// existing allocation. If growth is needed and fails, baked capacity drops
// to zero, stale stays set, and the next attempt retries from scratch.
func (e *Engine) bakeLocked(ent *entry) error {
	if !ent.stale {
		return nil
	}

	outLen := ent.raw.Len()
	if ent.mono {
		outLen *= 2
	}

	if err := ent.baked.Ensure(outLen); err != nil {
		return fmt.Errorf("growing baked buffer: %w", err)
	}

	vol := e.effectiveVolume()
	raw := ent.raw.Samples()
	out := ent.baked.Data()

	if ent.mono {
		for i, s := range raw {
			v := int16((int32(s) * vol) >> VolumeShift)
			out[2*i] = v
			out[2*i+1] = v
		}
	} else {
		for i, s := range raw {
			out[i] = int16((int32(s) * vol) >> VolumeShift)
		}
	}

	ent.baked.SetLen(outLen)
	ent.baked.ZeroTail()
	ent.stale = false

	return nil
}
