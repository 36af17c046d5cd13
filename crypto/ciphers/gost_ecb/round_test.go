package gost_ecb

import (
	"testing"
)

// -----------------------------------------------------------------------------

func TestSubstituteNibbleBijection(t *testing.T) {
	for pos := 0; pos < 8; pos++ {
		var seen [16]bool

		shift := uint(4 * pos)
		for nibble := uint32(0); nibble < 16; nibble++ {
			out := (substitute(nibble<<shift) >> shift) & 0x0F
			if seen[out] {
				t.Fatalf("nibble position %d maps two inputs to 0x%X", pos, out)
			}
			seen[out] = true
		}
	}
}

func TestSubstituteKnownValues(t *testing.T) {
	vectors := []struct {
		in  uint32
		out uint32
	}{
		{0x00000000, 0x1D4675E4},
		{0x12345678, 0xF40584A6},
		{0xFFFFFFFF, 0xCCE23B93},
	}

	for _, v := range vectors {
		if got := substitute(v.in); got != v.out {
			t.Fatalf("substitute(0x%08X) = 0x%08X, want 0x%08X", v.in, got, v.out)
		}
	}
}

func TestRotateLeft(t *testing.T) {
	if got := rotateLeft(0x80000001, 1); got != 0x00000003 {
		t.Fatalf("rotateLeft wrapped to 0x%08X", got)
	}
	if got := rotateLeft(0x12345678, 0); got != 0x12345678 {
		t.Fatalf("rotateLeft by zero changed the value to 0x%08X", got)
	}

	values := []uint32{0, 1, 0x80000000, 0xDEADBEEF, 0xFFFFFFFF, 0x0F0F0F0F}
	for _, x := range values {
		for s := uint(0); s < 32; s++ {
			if got := rotateLeft(rotateLeft(x, s), 32-s); got != x {
				t.Fatalf("rotation by %d/%d did not restore 0x%08X (got 0x%08X)", s, 32-s, x, got)
			}
		}
	}
}

func TestRound(t *testing.T) {
	left, right := round(0x01234567, 0x89ABCDEF, 0xDEADBEEF)
	if left != 0x01234567 {
		t.Fatalf("round modified the left half: 0x%08X", left)
	}
	if right != 0xEA7D4E89 {
		t.Fatalf("unexpected right half 0x%08X", right)
	}

	t.Log("Checking the key addition wraps modulo 2^32...")
	_, wrapped := round(0xFFFFFFFF, 0x55555555, 1)
	_, plain := round(0, 0x55555555, 0)
	if wrapped != plain {
		t.Fatalf("key addition did not wrap (0x%08X != 0x%08X)", wrapped, plain)
	}
}
