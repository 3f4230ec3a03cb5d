package sqlite

import "testing"

func TestChain_StartsAtZero(t *testing.T) {
	b := newAttachedBackend(t)

	height, err := b.Chain().Height()
	if err != nil {
		t.Fatalf("Height failed: %v", err)
	}
	if height != 0 {
		t.Errorf("expected height 0, got %d", height)
	}
}

func TestChain_Advance(t *testing.T) {
	b := newAttachedBackend(t)

	height, err := b.Chain().Advance(5)
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if height != 5 {
		t.Errorf("expected 5, got %d", height)
	}

	height, err = b.Chain().Advance(10)
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if height != 15 {
		t.Errorf("expected 15, got %d", height)
	}
}

func TestChain_AdvanceZeroIsRead(t *testing.T) {
	b := newAttachedBackend(t)

	if _, err := b.Chain().Advance(3); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	height, err := b.Chain().Advance(0)
	if err != nil {
		t.Fatalf("Advance(0) failed: %v", err)
	}
	if height != 3 {
		t.Errorf("Advance(0) must not move the height, got %d", height)
	}
}
