package challenge

import "context"

// NextQuestion is the sequencer output: either the next unanswered question
// (sanitized) or a completion signal carrying the progress summary.
type NextQuestion struct {
	Completed bool             `json:"completed"`
	Question  *QuestionView    `json:"question,omitempty"`
	Progress  *ProgressSummary `json:"progress,omitempty"`
}

// Next returns the first question, in the challenge's defined order, whose
// number is not in the user's answered-set. Defined order (not numeric order
// of question numbers) keeps the sequence author-controlled even when numbers
// are sparse or out of order.
func (s *Service) Next(ctx context.Context, challengeID, userID string) (NextQuestion, error) {
	ch, err := s.catalog.Load(challengeID)
	if err != nil {
		return NextQuestion{}, err
	}
	answered, err := s.progress.Answered(ctx, userID, challengeID)
	if err != nil {
		return NextQuestion{}, err
	}
	for _, q := range ch.Questions {
		if _, done := answered[q.Number]; !done {
			v := q.View()
			return NextQuestion{Question: &v}, nil
		}
	}
	p := summarize(len(answered), len(ch.Questions))
	return NextQuestion{Completed: true, Progress: &p}, nil
}
