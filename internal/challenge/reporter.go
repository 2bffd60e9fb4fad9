package challenge

import (
	"context"
	"math"
)

type ProgressSummary struct {
	Completed   int     `json:"completed"`
	Total       int     `json:"total"`
	Percentage  float64 `json:"percentage"`
	IsCompleted bool    `json:"is_completed"`
}

// DifficultyStats counts challenges per tier in an all-challenges report.
type DifficultyStats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Report aggregates a user's standing across the whole catalog. Points accrue
// only for fully completed challenges.
type Report struct {
	Challenges          map[string]ProgressSummary     `json:"challenges"`
	TotalChallenges     int                            `json:"total_challenges"`
	CompletedChallenges int                            `json:"completed_challenges"`
	TotalPoints         int                            `json:"total_points"`
	EarnedPoints        int                            `json:"earned_points"`
	Percentage          float64                        `json:"progress_percentage"`
	ByDifficulty        map[Difficulty]DifficultyStats `json:"challenges_by_difficulty"`
}

func summarize(completed, total int) ProgressSummary {
	p := ProgressSummary{Completed: completed, Total: total, IsCompleted: completed >= total}
	if total > 0 {
		p.Percentage = round2(float64(completed) / float64(total) * 100)
	}
	return p
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// ForChallenge reports completion for one challenge. The answered-set is only
// ever populated through valid submissions, so its size is the completed count.
func (s *Service) ForChallenge(ctx context.Context, challengeID, userID string) (ProgressSummary, error) {
	ch, err := s.catalog.Load(challengeID)
	if err != nil {
		return ProgressSummary{}, err
	}
	answered, err := s.progress.Answered(ctx, userID, challengeID)
	if err != nil {
		return ProgressSummary{}, err
	}
	return summarize(len(answered), len(ch.Questions)), nil
}

// ForAllChallenges builds one report entry per catalog entry. A challenge that
// fails to load degrades to a zeroed summary instead of aborting the report.
func (s *Service) ForAllChallenges(ctx context.Context, userID string) (Report, error) {
	r := Report{
		Challenges:   make(map[string]ProgressSummary),
		ByDifficulty: make(map[Difficulty]DifficultyStats),
	}
	for _, id := range s.catalog.IDs() {
		r.TotalChallenges++
		ch, err := s.catalog.Load(id)
		if err != nil {
			r.Challenges[id] = ProgressSummary{}
			continue
		}
		p, err := s.ForChallenge(ctx, id, userID)
		if err != nil {
			r.Challenges[id] = ProgressSummary{}
			continue
		}
		r.Challenges[id] = p
		r.TotalPoints += ch.Points
		stats := r.ByDifficulty[ch.Difficulty]
		stats.Total++
		if p.IsCompleted {
			r.CompletedChallenges++
			r.EarnedPoints += ch.Points
			stats.Completed++
		}
		r.ByDifficulty[ch.Difficulty] = stats
	}
	if r.TotalChallenges > 0 {
		r.Percentage = round2(float64(r.CompletedChallenges) / float64(r.TotalChallenges) * 100)
	}
	return r, nil
}

// SummaryWithProgress pairs catalog metadata with the caller's progress for
// the challenge list endpoint. Inactive challenges are skipped.
type SummaryWithProgress struct {
	Summary
	Progress ProgressSummary `json:"progress"`
}

func (s *Service) ListSummaries(ctx context.Context, userID string) ([]SummaryWithProgress, error) {
	var out []SummaryWithProgress
	for _, id := range s.catalog.IDs() {
		ch, err := s.catalog.Load(id)
		if err != nil || !ch.Active {
			continue
		}
		p, err := s.ForChallenge(ctx, id, userID)
		if err != nil {
			p = ProgressSummary{}
		}
		out = append(out, SummaryWithProgress{Summary: ch.Summary(), Progress: p})
	}
	return out, nil
}

// Describe returns challenge metadata by id without its questions.
func (s *Service) Describe(id string) (Summary, error) {
	ch, err := s.catalog.Load(id)
	if err != nil {
		return Summary{}, err
	}
	return ch.Summary(), nil
}
