// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrTooManySamples = errors.New("source produced more samples than the configured limit")
)
