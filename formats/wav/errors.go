package wav

import "errors"

var (
	ErrNotWavFile              = errors.New("not a WAV file")
	ErrUnsupportedWavLayout    = errors.New("unsupported WAV layout")
	ErrNoDataChunk             = errors.New("no data chunk found")
	ErrOnlyPCMSupported        = errors.New("only raw PCM encoding supported")
	ErrUnsupportedChannelCount = errors.New("channel count must be 1 or 2")
	ErrUnsupportedBitDepth     = errors.New("bits per sample must be 8 or 16")
)
