// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// WriteWAVFixture writes a PCM WAV file at path using the go-audio encoder,
// which produces the full canonical chunk layout independently of this
// module's own writer. samples hold raw container values: signed for
// bitDepth 16, unsigned 0..255 for bitDepth 8.
func WriteWAVFixture(path string, sampleRate, bitDepth, channels int, samples []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating fixture: %w", err)
	}

	enc := gowav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		enc.Close()
		f.Close()
		return fmt.Errorf("encoding fixture: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalizing fixture: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WriteInt16Fixture is WriteWAVFixture for 16-bit signed samples.
func WriteInt16Fixture(path string, sampleRate, channels int, samples []int16) error {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	return WriteWAVFixture(path, sampleRate, 16, channels, data)
}

// WriteCorruptFixture writes a file whose container tag is wrong, for
// load-failure tests.
func WriteCorruptFixture(path string) error {
	if err := os.WriteFile(path, []byte("JUNKxxxxDATAnot a wav at all"), 0o644); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
