package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/sfxcache/audio"
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	bits       int
	remaining  int // payload bytes left in the data chunk
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) BufSize() int    { return cap(s.buf) / (s.bits / 8) }

func (s *wavSource) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.remaining == 0 {
		return 0, io.EOF
	}

	bytesPerSample := s.bits / 8
	want := min(len(dst)*bytesPerSample, s.remaining)
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.r, s.buf)
	s.remaining -= n
	if err != nil {
		// The data chunk declared more bytes than the stream holds; a
		// truncated effect is useless, so discard what was read.
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / bytesPerSample
	switch s.bits {
	case 8:
		// Unsigned 8-bit centers silence at 128; shift into the full
		// signed 16-bit range.
		for i := range samples {
			dst[i] = int16(int(s.buf[i])-128) << 8
		}
	default: // 16
		for i := range samples {
			dst[i] = int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		}
	}

	return samples, nil
}

// Decoder reads the RIFF/WAVE container: a 12-byte header followed by
// consecutive (tag, length) chunks. Unknown chunks are skipped; scanning
// stops at the data chunk.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	var (
		haveFmt     bool
		audioFormat uint16
		channels    int
		sampleRate  int
		bits        int
	)

	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrNoDataChunk
			}
			return nil, fmt.Errorf("%w", err)
		}

		size := int(binary.LittleEndian.Uint32(chunk[4:8]))

		switch string(chunk[0:4]) {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, ErrUnsupportedWavLayout
			}

			audioFormat = binary.LittleEndian.Uint16(body[0:2])
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bits = int(binary.LittleEndian.Uint16(body[14:16]))

			if audioFormat != 1 {
				return nil, ErrOnlyPCMSupported
			}
			if channels == 0 || channels > 2 {
				return nil, ErrUnsupportedChannelCount
			}
			if bits != 8 && bits != 16 {
				return nil, ErrUnsupportedBitDepth
			}
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, ErrUnsupportedWavLayout
			}
			// No chunk after data is consulted.
			return &wavSource{
				r:          r,
				sampleRate: sampleRate,
				channels:   channels,
				bits:       bits,
				remaining:  size,
				buf:        make([]byte, 4096),
			}, nil

		default:
			if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
				return nil, ErrNoDataChunk
			}
		}
	}
}
