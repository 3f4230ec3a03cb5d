package sqlite

import (
	"testing"

	"github.com/dripworks/dripstand/pkg/types"
)

func TestCounters_StartAtZero(t *testing.T) {
	b := newAttachedBackend(t)

	for _, name := range []string{types.SeqPlans, types.SeqPurchases, types.SeqTally} {
		value, err := b.Sequences().Current(name)
		if err != nil {
			t.Fatalf("Current(%s) failed: %v", name, err)
		}
		if value != 0 {
			t.Errorf("counter %s must start at 0, got %d", name, value)
		}
	}
}

func TestCounters_NextIncrementsByOne(t *testing.T) {
	b := newAttachedBackend(t)

	for want := uint64(1); want <= 3; want++ {
		got, err := b.Sequences().Next(types.SeqTally)
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if got != want {
			t.Errorf("expected %d, got %d", want, got)
		}
	}

	value, err := b.Sequences().Current(types.SeqTally)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if value != 3 {
		t.Errorf("expected current 3, got %d", value)
	}
}

func TestCounters_Independent(t *testing.T) {
	b := newAttachedBackend(t)

	if _, err := b.Sequences().Next(types.SeqTally); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if _, err := b.Sequences().Next(types.SeqTally); err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	// Advancing the tally must not move plan or purchase numbering.
	plans, err := b.Sequences().Current(types.SeqPlans)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	purchases, err := b.Sequences().Current(types.SeqPurchases)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if plans != 0 || purchases != 0 {
		t.Errorf("counters must not share state: plans=%d purchases=%d", plans, purchases)
	}
}

func TestCounters_UnknownSequence(t *testing.T) {
	b := newAttachedBackend(t)

	if _, err := b.Sequences().Next("bogus"); err != types.ErrUnknownSequence {
		t.Errorf("expected ErrUnknownSequence from Next, got %v", err)
	}
	if _, err := b.Sequences().Current("bogus"); err != types.ErrUnknownSequence {
		t.Errorf("expected ErrUnknownSequence from Current, got %v", err)
	}
}
