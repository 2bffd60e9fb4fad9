package challenge

import (
	"context"
	"sync"
)

// ProgressStore records which question numbers a user has answered per
// challenge. Answered returns an empty set when no record exists; MarkAnswered
// is an idempotent insert and creates the record if absent. Implementations
// must be safe for concurrent callers.
type ProgressStore interface {
	Answered(ctx context.Context, userID, challengeID string) (map[int]struct{}, error)
	MarkAnswered(ctx context.Context, userID, challengeID string, questionNumber int) error
}

type progressKey struct {
	userID      string
	challengeID string
}

// MemoryProgressStore keeps answered-sets in process memory. Records live for
// the process lifetime.
type MemoryProgressStore struct {
	mu       sync.RWMutex
	answered map[progressKey]map[int]struct{}
}

func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{answered: make(map[progressKey]map[int]struct{})}
}

func (m *MemoryProgressStore) Answered(_ context.Context, userID, challengeID string) (map[int]struct{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set := m.answered[progressKey{userID, challengeID}]
	out := make(map[int]struct{}, len(set))
	for n := range set {
		out[n] = struct{}{}
	}
	return out, nil
}

func (m *MemoryProgressStore) MarkAnswered(_ context.Context, userID, challengeID string, questionNumber int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := progressKey{userID, challengeID}
	set, ok := m.answered[k]
	if !ok {
		set = make(map[int]struct{})
		m.answered[k] = set
	}
	set[questionNumber] = struct{}{}
	return nil
}
