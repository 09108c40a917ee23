// SPDX-License-Identifier: EPL-2.0

// Package sfxcache is a low-latency sound-effect cache and playback engine
// for output devices that want fixed-alignment, pre-formatted PCM buffers.
//
// Effect files are loaded from disk once, normalized to signed 16-bit PCM,
// and baked into interleaved stereo buffers with the master volume already
// applied. Playing a cached sound is then a constant-time submission: no
// decoding, no scaling, no allocation.
//
// # Two buffers per sound
//
// Every sound keeps two buffers. The raw buffer holds normalized samples
// at the file's own channel count with no volume applied; it never changes
// until the file is reloaded. The baked buffer is derived from it and is
// what the device plays. Changing the master volume or the environment
// flag only marks sounds stale; the baked buffer is recomputed lazily on
// the next Play, in place, inside the same allocation.
//
// # Quick start
//
//	dev, err := device.NewOto(48000)
//	if err != nil {
//	    // no audio backend available
//	}
//
//	engine, err := sfxcache.New(sfxcache.Config{
//	    Device: dev,
//	    Sounds: []string{"assets/click.wav", "assets/error.wav"},
//	})
//	if err != nil {
//	    // bad configuration
//	}
//	engine.ReloadAll()
//
//	engine.Play(0) // click
//	engine.SetMasterVolume(0.5)
//	engine.Play(1) // error, rebaked at half volume on this call
//
// # Supported formats
//
// Files are matched to decoders by extension: WAV (the native format, PCM
// 8/16-bit), MP3, Ogg Vorbis and AIFF. All decoding happens at load time;
// see the formats subpackages.
//
// # Concurrency
//
// All methods are safe for concurrent use. Cache mutation serializes
// through one mutex; SetEnabled, IsEnabled and the volume read on the play
// path are lock-free atomics, so a disabled engine costs nothing even
// under contention.
//
// # Failure model
//
// Loads fail softly: a missing or undecodable file leaves its sound silent
// and everything else playing. Play never fails for absent sounds; its
// only error is a failed buffer growth during rebake, which is retried on
// the next Play.
package sfxcache
