package multi

import (
	"testing"

	"github.com/ib-77/lazyv/pkg/val"
)

func TestEmpty(t *testing.T) {
	t.Parallel()
	if got := Empty[int]().Lift(); len(got) != 0 {
		t.Fatalf("expected zero items, got %v", got)
	}
	if got := Empty[string]().Lift(); len(got) != 0 {
		t.Fatalf("expected zero items for any item type, got %v", got)
	}
}

func TestVals(t *testing.T) {
	t.Parallel()
	mv := Vals(1, 2, 3)
	got := Items(mv)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
}

func TestFromValues_LazyAndOrdered(t *testing.T) {
	t.Parallel()
	count := 0
	a := val.Of(func() int {
		count++
		return 1
	})
	b := val.Lit(2)

	mv := FromValues(a, b)
	if count != 0 {
		t.Fatalf("inner values must not evaluate at construction")
	}

	got := mv.Lift()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected [1 2] in order, got %v", got)
	}
	if count != 1 {
		t.Fatalf("inner computation ran %d times, want 1", count)
	}
}

func TestFromValues_InnerMemoizationShared(t *testing.T) {
	t.Parallel()
	count := 0
	shared := val.Of(func() int {
		count++
		return 5
	})

	first := FromValues(shared)
	second := FromValues(shared, shared)
	first.Lift()
	second.Lift()

	if count != 1 {
		t.Fatalf("shared inner value ran %d times, want 1", count)
	}
}
