package conv

import (
	"math"
	"testing"
)

func TestIntToUint32(t *testing.T) {
	if got := IntToUint32(42); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestIntToUint32NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative input")
		}
	}()
	IntToUint32(-1)
}

func TestUint64ToUint32Overflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overflow")
		}
	}()
	Uint64ToUint32(1 << 40)
}

func TestAddUint32(t *testing.T) {
	if got := AddUint32(3, 4); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestAddUint32Overflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overflow")
		}
	}()
	AddUint32(math.MaxUint32, 1)
}
