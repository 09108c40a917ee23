// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src to completion and returns all of its samples as one
// slice. Reads happen in bounded chunks sized by the source's own BufSize,
// so the working set stays fixed no matter how long the stream is.
//
// limit bounds the total number of samples Collect will accept; 0 disables
// the bound. A source that keeps producing past the limit fails with
// ErrTooManySamples, and any error mid-stream (including a truncated
// payload) discards the partial result.
//
// Returns:
//   - []int16: collected interleaved PCM samples
//   - error: any error encountered before the stream finished
func Collect(src Source, limit int) ([]int16, error) {
	chunk := src.BufSize()
	if chunk <= 0 {
		chunk = 4096
	}

	samples := make([]int16, 0, chunk)
	buf := make([]int16, chunk)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if limit > 0 && len(samples)+n > limit {
				return nil, ErrTooManySamples
			}
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}
