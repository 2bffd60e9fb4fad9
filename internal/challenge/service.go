package challenge

import "fmt"

// Service is the progress-tracking and grading engine. It owns no state of
// its own: the catalog is read-only and the progress store carries all
// mutation, so a Service is safe for concurrent use.
type Service struct {
	catalog  Catalog
	progress ProgressStore
}

func NewService(catalog Catalog, progress ProgressStore) *Service {
	return &Service{catalog: catalog, progress: progress}
}

func findQuestion(ch Challenge, number int) (Question, error) {
	for _, q := range ch.Questions {
		if q.Number == number {
			return q, nil
		}
	}
	return Question{}, fmt.Errorf("question %d in challenge %q: %w", number, ch.ID, ErrNotFound)
}
