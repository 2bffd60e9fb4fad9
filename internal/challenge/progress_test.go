package challenge

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryProgressStoreBasics(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryProgressStore()

	set, err := s.Answered(ctx, "u1", "c1")
	if err != nil {
		t.Fatalf("answered: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("fresh set = %v, want empty", set)
	}

	_ = s.MarkAnswered(ctx, "u1", "c1", 3)
	_ = s.MarkAnswered(ctx, "u1", "c1", 3)
	_ = s.MarkAnswered(ctx, "u1", "c1", 7)
	_ = s.MarkAnswered(ctx, "u2", "c1", 1)

	set, _ = s.Answered(ctx, "u1", "c1")
	if len(set) != 2 {
		t.Errorf("set = %v, want {3,7}", set)
	}
	set, _ = s.Answered(ctx, "u1", "c2")
	if len(set) != 0 {
		t.Errorf("other challenge set = %v", set)
	}

	// The returned set is a copy; mutating it must not affect the store.
	set, _ = s.Answered(ctx, "u2", "c1")
	set[99] = struct{}{}
	set, _ = s.Answered(ctx, "u2", "c1")
	if len(set) != 1 {
		t.Errorf("store mutated through returned set: %v", set)
	}
}

func TestMemoryProgressStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryProgressStore()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				_ = s.MarkAnswered(ctx, "u1", "c1", n)
				_, _ = s.Answered(ctx, "u1", "c1")
			}
		}()
	}
	wg.Wait()

	set, _ := s.Answered(ctx, "u1", "c1")
	if len(set) != 50 {
		t.Fatalf("set size = %d, want 50", len(set))
	}
}
