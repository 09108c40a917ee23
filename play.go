// SPDX-License-Identifier: EPL-2.0

package sfxcache

// Play submits sound id to the output device. It is safe to call from any
// goroutine; two Play calls for the same id are ordered by lock
// acquisition and their submissions never interleave.
//
// The fast rejects (disabled engine, out-of-range id, empty slot) are
// silent no-ops: a missing UI sound should never disturb the caller. The
// only error Play can return is a failed rebake, which leaves the sound
// stale so the next Play retries.
func (e *Engine) Play(id int) error {
	if !e.enabled.Load() {
		return nil
	}
	if id < 0 || id >= len(e.entries) {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ent := &e.entries[id]
	if ent.raw.Empty() {
		return nil
	}

	// Reclaim finished descriptors first. This keeps the device's queue
	// moving and guarantees any previous submission of this entry is done
	// before its buffer is rewritten in place below.
	e.dev.Poll()

	if ent.stale {
		if err := e.bakeLocked(ent); err != nil {
			return err
		}
	}

	ent.desc.Data = ent.baked.Data()
	ent.desc.Len = ent.baked.Len()
	e.dev.Submit(&ent.desc)

	return nil
}
