package aiff

import "errors"

var (
	ErrNotAiffFile             = errors.New("not an AIFF file")
	ErrUnsupportedAiffLayout   = errors.New("unsupported AIFF layout")
	ErrUnsupportedBitDepth     = errors.New("bits per sample must be 8 or 16")
	ErrUnsupportedChannelCount = errors.New("channel count must be 1 or 2")
)
