// SPDX-License-Identifier: EPL-2.0

package sfxcache

// Fixed-point volume scale. VolumeMax is 1.0; scaling a sample is
// (s * v) >> VolumeShift, integer-only.
const (
	VolumeShift = 15
	VolumeMax   = 1 << VolumeShift
)

// SetMasterVolume stores the clamped volume (0.0 to 1.0) as fixed point
// and marks every loaded sound for re-baking. No buffer work happens here;
// the next Play of each sound pays the (cheap) rebake cost.
func (e *Engine) SetMasterVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	e.volume.Store(int32(v * VolumeMax))
	e.markAllStale()
}

// MasterVolume reports the current volume on the 0.0 to 1.0 scale.
func (e *Engine) MasterVolume() float64 {
	return float64(e.volume.Load()) / VolumeMax
}

// SetEnvironment records whether the attenuated environment is active
// (for example a loud fixed-volume output path that needs protecting).
// Returns false when the state did not change, in which case nothing is
// flagged stale.
func (e *Engine) SetEnvironment(attenuated bool) bool {
	if e.attenuated.Load() == attenuated {
		return false
	}

	e.mu.Lock()
	e.attenuated.Store(attenuated)
	for i := range e.entries {
		e.entries[i].stale = true
	}
	e.mu.Unlock()

	return true
}

// RefreshEnvironment polls the configured environment query and applies
// the result. Callers are expected to invoke this occasionally (once per
// UI frame is plenty), never from the play path.
func (e *Engine) RefreshEnvironment() bool {
	if e.envQuery == nil {
		return false
	}
	return e.SetEnvironment(e.envQuery())
}

// SetEnabled turns playback on or off. Disabling is a lock-free flag;
// Play honors it before doing any work.
func (e *Engine) SetEnabled(v bool) { e.enabled.Store(v) }

// IsEnabled reports whether playback is permitted.
func (e *Engine) IsEnabled() bool { return e.enabled.Load() }

func (e *Engine) markAllStale() {
	e.mu.Lock()
	for i := range e.entries {
		e.entries[i].stale = true
	}
	e.mu.Unlock()
}

// effectiveVolume is the fixed-point volume the baker applies: the master
// volume, halved in the attenuated environment.
func (e *Engine) effectiveVolume() int32 {
	v := e.volume.Load()
	if e.attenuated.Load() {
		v >>= 1
	}
	return v
}
