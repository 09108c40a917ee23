// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"testing"
)

func TestBuffer_EnsureAligns(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(4096, 0) // 2048 samples per alignment unit

	if err := buf.Ensure(1); err != nil {
		t.Fatalf("Ensure(1) returned error: %v", err)
	}

	if buf.Cap() != 2048 {
		t.Errorf("Cap() = %d, want 2048", buf.Cap())
	}

	if err := buf.Ensure(2049); err != nil {
		t.Fatalf("Ensure(2049) returned error: %v", err)
	}

	if buf.Cap() != 4096 {
		t.Errorf("Cap() after growth = %d, want 4096", buf.Cap())
	}
}

func TestBuffer_CapacityNeverShrinks(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(4096, 0)

	if err := buf.Ensure(5000); err != nil {
		t.Fatalf("Ensure(5000) returned error: %v", err)
	}
	grown := buf.Cap()

	if err := buf.Ensure(10); err != nil {
		t.Fatalf("Ensure(10) returned error: %v", err)
	}

	if buf.Cap() != grown {
		t.Errorf("Cap() shrank from %d to %d", grown, buf.Cap())
	}
}

func TestBuffer_EnsureReusesAllocation(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(4096, 0)
	if err := buf.Ensure(100); err != nil {
		t.Fatalf("Ensure(100) returned error: %v", err)
	}

	buf.Data()[0] = 42
	if err := buf.Ensure(100); err != nil {
		t.Fatalf("second Ensure(100) returned error: %v", err)
	}

	if buf.Data()[0] != 42 {
		t.Error("Ensure with sufficient capacity replaced the allocation")
	}
}

func TestBuffer_EnsureOverLimit(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(4096, 8192) // at most 4096 samples

	if err := buf.Ensure(100); err != nil {
		t.Fatalf("Ensure(100) returned error: %v", err)
	}

	err := buf.Ensure(5000)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Ensure over limit returned %v, want ErrTooLarge", err)
	}

	// Failure drops the allocation so a later retry starts clean.
	if buf.Cap() != 0 {
		t.Errorf("Cap() after failed Ensure = %d, want 0", buf.Cap())
	}
	if buf.Len() != 0 {
		t.Errorf("Len() after failed Ensure = %d, want 0", buf.Len())
	}
}

func TestBuffer_ZeroTail(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(16, 0)
	if err := buf.Ensure(3); err != nil {
		t.Fatalf("Ensure(3) returned error: %v", err)
	}

	data := buf.Data()
	for i := range data {
		data[i] = -1
	}
	buf.SetLen(3)
	buf.ZeroTail()

	for i, s := range buf.Data() {
		if i < 3 {
			if s != -1 {
				t.Errorf("meaningful sample %d clobbered: %d", i, s)
			}
			continue
		}
		if s != 0 {
			t.Errorf("padding sample %d = %d, want 0", i, s)
		}
	}
}

func TestBuffer_Release(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(4096, 0)
	if err := buf.Ensure(100); err != nil {
		t.Fatalf("Ensure(100) returned error: %v", err)
	}
	buf.SetLen(100)

	buf.Release()

	if !buf.Empty() || buf.Cap() != 0 {
		t.Errorf("Release left Len=%d Cap=%d", buf.Len(), buf.Cap())
	}
}

func TestBuffer_SetLenClampsToCap(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(8, 0)
	if err := buf.Ensure(4); err != nil {
		t.Fatalf("Ensure(4) returned error: %v", err)
	}

	buf.SetLen(100)
	if buf.Len() != buf.Cap() {
		t.Errorf("Len() = %d, want clamp to Cap %d", buf.Len(), buf.Cap())
	}
}
