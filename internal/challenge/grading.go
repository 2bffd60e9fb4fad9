package challenge

import (
	"context"
	"fmt"
)

// SubmitInput uses pointer fields so that absent request fields are
// distinguishable from zero values; both are required.
type SubmitInput struct {
	QuestionNumber *int `json:"question_number"`
	SelectedAnswer *int `json:"selected_answer"`
}

// CorrectAnswer identifies the option flagged correct, revealed only after a
// wrong submission.
type CorrectAnswer struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	Rationale string `json:"rationale,omitempty"`
}

type GradeResult struct {
	Correct       bool            `json:"correct"`
	Explanation   string          `json:"explanation,omitempty"`
	CorrectAnswer *CorrectAnswer  `json:"correct_answer"`
	Progress      ProgressSummary `json:"progress"`
}

// Submit grades one answer. The question is marked answered whether or not
// the answer is correct; the sequencer will not re-offer it.
func (s *Service) Submit(ctx context.Context, challengeID, userID string, in SubmitInput) (GradeResult, error) {
	if in.QuestionNumber == nil {
		return GradeResult{}, fmt.Errorf("question_number is required: %w", ErrInvalidInput)
	}
	if in.SelectedAnswer == nil {
		return GradeResult{}, fmt.Errorf("selected_answer is required: %w", ErrInvalidInput)
	}
	ch, err := s.catalog.Load(challengeID)
	if err != nil {
		return GradeResult{}, err
	}
	q, err := findQuestion(ch, *in.QuestionNumber)
	if err != nil {
		return GradeResult{}, err
	}
	idx := *in.SelectedAnswer
	if idx < 0 || idx >= len(q.Options) {
		return GradeResult{}, fmt.Errorf("selected_answer %d out of range [0,%d): %w", idx, len(q.Options), ErrInvalidInput)
	}
	selected := q.Options[idx]

	if err := s.progress.MarkAnswered(ctx, userID, challengeID, q.Number); err != nil {
		return GradeResult{}, err
	}

	res := GradeResult{
		Correct:     selected.Correct,
		Explanation: selected.Rationale,
	}
	if !selected.Correct {
		// First flagged option wins if the content violates the
		// one-correct-option invariant.
		for i, o := range q.Options {
			if o.Correct {
				res.CorrectAnswer = &CorrectAnswer{Index: i, Text: o.Text, Rationale: o.Rationale}
				break
			}
		}
	}

	p, err := s.ForChallenge(ctx, challengeID, userID)
	if err != nil {
		return GradeResult{}, err
	}
	res.Progress = p
	return res, nil
}
