package pcm

import "errors"

var (
	ErrTooLarge = errors.New("requested buffer size exceeds limit")
)
