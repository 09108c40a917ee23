package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates the go-audio aiff decoder for testing
type mockAiffReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
}

func (m *mockAiffReader) Format() *goaudio.Format { return m.format }

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, nil
	}

	n := min(len(buf.Data), len(m.samples)-m.offset)
	copy(buf.Data, m.samples[m.offset:m.offset+n])
	m.offset += n
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("not an aiff file")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestSource_Widens8Bit(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{
		format:  &goaudio.Format{SampleRate: 22050, NumChannels: 1},
		samples: []int{0, 1, -1, 127, -128},
	}

	src := &source{
		dec:        mock,
		sampleRate: 22050,
		channels:   1,
		bitDepth:   8,
	}

	dst := make([]int16, 5)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}

	want := []int16{0, 256, -256, 32512, -32768}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestSource_Passes16BitThrough(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{
		format:  &goaudio.Format{SampleRate: 44100, NumChannels: 2},
		samples: []int{1000, -1000, 32767, -32768},
	}

	src := &source{
		dec:        mock,
		sampleRate: 44100,
		channels:   2,
		bitDepth:   16,
	}

	dst := make([]int16, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []int16{1000, -1000, 32767, -32768}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{
		format: &goaudio.Format{SampleRate: 44100, NumChannels: 1},
	}

	src := &source{
		dec:        mock,
		sampleRate: 44100,
		channels:   1,
		bitDepth:   16,
	}

	dst := make([]int16, 8)
	n, err := src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestReadSeeker_Seek(t *testing.T) {
	t.Parallel()

	rs := &readSeeker{data: []byte{1, 2, 3, 4, 5}}

	pos, err := rs.Seek(2, io.SeekStart)
	if err != nil || pos != 2 {
		t.Fatalf("Seek(2, SeekStart) = (%d, %v)", pos, err)
	}

	buf := make([]byte, 2)
	n, err := rs.Read(buf)
	if err != nil || n != 2 || buf[0] != 3 {
		t.Errorf("Read after seek = (%d, %v), buf=%v", n, err, buf)
	}

	if _, err := rs.Seek(-1, io.SeekStart); err == nil {
		t.Error("Seek to negative position succeeded, want error")
	}
}
