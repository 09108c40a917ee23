// SPDX-License-Identifier: EPL-2.0

package sfxcache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ik5/sfxcache/audio"
	"github.com/ik5/sfxcache/device"
	"github.com/ik5/sfxcache/formats/aiff"
	"github.com/ik5/sfxcache/formats/mp3"
	"github.com/ik5/sfxcache/formats/vorbis"
	"github.com/ik5/sfxcache/formats/wav"
	"github.com/ik5/sfxcache/pcm"
)

// DefaultMaxSoundBytes bounds a single decoded effect. Effects are short
// UI sounds; anything bigger is almost certainly a mistaken asset.
const DefaultMaxSoundBytes = 4 << 20

// Config carries the collaborators an Engine needs. Device is required;
// everything else has a usable default.
type Config struct {
	// Device receives baked buffers for playback.
	Device device.Output

	// Sounds maps each sound identifier (the slice index) to its default
	// file path, used by ReloadAll. An empty path registers the id with
	// no default.
	Sounds []string

	// Formats resolves decoders by file extension. Defaults to
	// DefaultFormats().
	Formats *audio.Registry

	// MaxSoundBytes bounds any single raw or baked buffer. Defaults to
	// DefaultMaxSoundBytes.
	MaxSoundBytes int

	// Environment, when set, is queried by RefreshEnvironment to learn
	// whether the attenuated environment is active. The query may cost a
	// system call, so it is never consulted on the play path.
	Environment func() bool
}

// Engine is the sound-effect cache: it loads effect files once, keeps a
// volume-independent raw copy plus a hardware-ready baked copy per sound,
// and replays baked buffers with no per-sample work.
//
// One exclusive mutex serializes all cache mutation (load, unload, bake,
// play submission). Mutation is rare after startup, so the coarse lock is
// cheap; the enabled flag and master volume are atomics readable without
// it.
type Engine struct {
	dev      device.Output
	formats  *audio.Registry
	maxBytes int
	envQuery func() bool

	enabled    atomic.Bool
	volume     atomic.Int32 // Q15 fixed point, VolumeMax = 1.0
	attenuated atomic.Bool

	mu      sync.Mutex
	entries []entry
}

// entry is the per-sound cache slot. All fields are guarded by Engine.mu.
type entry struct {
	raw   pcm.Buffer // normalized 16-bit PCM, native channels, no volume
	baked pcm.Buffer // interleaved stereo, volume pre-applied
	mono  bool
	stale bool // baked no longer reflects current volume/environment
	desc  device.Descriptor
	path  string // registered default path, may be empty
}

// DefaultFormats returns a registry with every bundled decoder registered
// under its usual file extensions.
func DefaultFormats() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// New builds an Engine with one empty cache slot per registered sound.
// The engine starts enabled at full volume; no files are read until Load
// or ReloadAll.
func New(cfg Config) (*Engine, error) {
	if cfg.Device == nil {
		return nil, ErrNoDevice
	}

	formats := cfg.Formats
	if formats == nil {
		formats = DefaultFormats()
	}

	maxBytes := cfg.MaxSoundBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxSoundBytes
	}

	align := cfg.Device.Alignment()
	if align <= 0 {
		align = device.DefaultAlignment
	}

	e := &Engine{
		dev:      cfg.Device,
		formats:  formats,
		maxBytes: maxBytes,
		envQuery: cfg.Environment,
		entries:  make([]entry, len(cfg.Sounds)),
	}

	for i := range e.entries {
		e.entries[i].path = cfg.Sounds[i]
		e.entries[i].raw = pcm.NewBuffer(align, maxBytes)
		e.entries[i].baked = pcm.NewBuffer(align, maxBytes)
	}

	e.enabled.Store(true)
	e.volume.Store(VolumeMax)

	return e, nil
}

// Sounds reports the number of registered sound identifiers.
func (e *Engine) Sounds() int { return len(e.entries) }

// Load reads, normalizes and bakes the effect at path into slot id,
// replacing whatever was loaded there. On failure the slot's raw buffer is
// left empty and the sound stays silent; the previous baked allocation is
// kept so a later successful load reuses its capacity.
func (e *Engine) Load(id int, path string) error {
	if id < 0 || id >= len(e.entries) {
		return ErrUnknownSound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.loadLocked(id, path)
}

func (e *Engine) loadLocked(id int, path string) error {
	ent := &e.entries[id]

	// The old raw data is stale the moment a reload is requested.
	ent.raw.Release()

	dec, ok := e.formats.Get(formatKey(path))
	if !ok {
		return ErrUnknownFormat
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening sound %d: %w", id, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding sound %d: %w", id, err)
	}
	defer src.Close()

	channels := src.Channels()
	if channels == 0 || channels > 2 {
		return ErrUnsupportedChannelCount
	}

	samples, err := audio.Collect(src, e.maxBytes/2)
	if err != nil {
		return fmt.Errorf("reading sound %d: %w", id, err)
	}

	if err := ent.raw.Ensure(len(samples)); err != nil {
		return fmt.Errorf("allocating sound %d: %w", id, err)
	}
	copy(ent.raw.Data(), samples)
	ent.raw.SetLen(len(samples))
	ent.raw.ZeroTail()

	ent.mono = channels == 1
	ent.stale = true

	// Bake now so the very first play does no per-sample work.
	return e.bakeLocked(ent)
}

// Unload frees both buffers for id and resets the slot to empty.
func (e *Engine) Unload(id int) {
	if id < 0 || id >= len(e.entries) {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.entries[id].reset()
}

// UnloadAll unloads every sound except the ids listed in keep.
func (e *Engine) UnloadAll(keep ...int) {
	kept := make(map[int]struct{}, len(keep))
	for _, id := range keep {
		kept[id] = struct{}{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.entries {
		if _, ok := kept[i]; ok {
			continue
		}
		e.entries[i].reset()
	}
}

// ReloadAll loads every sound that has a registered default path. Failures
// are collected, not fatal: each failed sound just stays silent.
func (e *Engine) ReloadAll() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var errs []error
	for i := range e.entries {
		if e.entries[i].path == "" {
			continue
		}
		if err := e.loadLocked(i, e.entries[i].path); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Close frees every cache slot. The output device is owned by the caller
// and must be stopped before teardown; Close does not touch it.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.entries {
		e.entries[i].reset()
	}
	return nil
}

func (ent *entry) reset() {
	ent.raw.Release()
	ent.baked.Release()
	ent.mono = false
	ent.stale = false
	ent.desc = device.Descriptor{}
}

func formatKey(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
