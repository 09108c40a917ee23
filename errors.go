// SPDX-License-Identifier: EPL-2.0

package sfxcache

import "errors"

var (
	ErrNoDevice                = errors.New("output device is required")
	ErrUnknownSound            = errors.New("unknown sound identifier")
	ErrUnknownFormat           = errors.New("no decoder registered for file extension")
	ErrUnsupportedChannelCount = errors.New("channel count must be 1 or 2")
)
