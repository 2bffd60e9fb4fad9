package challenge

import (
	"context"
	"database/sql"
	"time"
)

// SQLProgressStore persists answered-sets in the challenge_progress table.
// Works against sqlite and postgres; the primary key on
// (user_id, challenge_id, question_number) plus ON CONFLICT DO NOTHING makes
// MarkAnswered idempotent under concurrent submissions.
type SQLProgressStore struct {
	db *sql.DB
}

func NewSQLProgressStore(db *sql.DB) *SQLProgressStore {
	return &SQLProgressStore{db: db}
}

func (s *SQLProgressStore) Answered(ctx context.Context, userID, challengeID string) (map[int]struct{}, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_number FROM challenge_progress WHERE user_id=$1 AND challenge_id=$2`,
		userID, challengeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	set := make(map[int]struct{})
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		set[n] = struct{}{}
	}
	return set, rows.Err()
}

func (s *SQLProgressStore) MarkAnswered(ctx context.Context, userID, challengeID string, questionNumber int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO challenge_progress (user_id, challenge_id, question_number, answered_at)
		 VALUES ($1,$2,$3,$4)
		 ON CONFLICT (user_id, challenge_id, question_number) DO NOTHING`,
		userID, challengeID, questionNumber, time.Now().Unix())
	return err
}
