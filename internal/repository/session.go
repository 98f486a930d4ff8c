package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/easyflash.git/internal/models"
)

type SessionR struct {
	db QueryI
}

func NewSessionRepository(db QueryI) *SessionR {
	return &SessionR{db: db}
}

// AddResult stores a finished session. Saving the same session twice (a
// retried run finishing again) overwrites the earlier row.
func (s *SessionR) AddResult(ctx context.Context, result models.SessionResult) error {
	query := `
		INSERT INTO session_results (user_id, session_id, mode, card_count, weak_count, medium_count, strong_count, accuracy, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, session_id)
		DO UPDATE SET
			card_count = EXCLUDED.card_count,
			weak_count = EXCLUDED.weak_count,
			medium_count = EXCLUDED.medium_count,
			strong_count = EXCLUDED.strong_count,
			accuracy = EXCLUDED.accuracy,
			finished_at = EXCLUDED.finished_at
	`

	_, err := s.db.ExecContext(ctx, query,
		result.UserID, result.SessionID, result.Mode, result.CardCount,
		result.Weak, result.Medium, result.Strong, result.Accuracy, result.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to add session result for user %d: %w", result.UserID, err)
	}

	return nil
}

func (s *SessionR) Stats(ctx context.Context, userID int64) (models.SessionStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_sessions,
			COALESCE(SUM(weak_count + medium_count + strong_count), 0) AS total_rated,
			COALESCE(SUM(strong_count), 0) AS strong_count,
			COALESCE(MAX(accuracy), 0) AS best_accuracy
		FROM session_results
		WHERE user_id = $1
	`

	var stats models.SessionStats
	err := s.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		return models.SessionStats{}, fmt.Errorf("failed to get session stats for user %d: %w", userID, err)
	}

	return stats, nil
}

// Results returns one page of the user's sessions, newest first, and the
// total number of stored sessions.
func (s *SessionR) Results(ctx context.Context, userID int64, offset int) ([]models.SessionResult, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM session_results WHERE user_id = $1`
	err := s.db.GetContext(ctx, &total, countQuery, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count session results for user %d: %w", userID, err)
	}

	if total == 0 {
		return []models.SessionResult{}, 0, nil
	}

	query := `
		SELECT user_id, session_id, mode, card_count, weak_count, medium_count, strong_count, accuracy, finished_at
		FROM session_results
		WHERE user_id = $1
		ORDER BY finished_at DESC
		LIMIT $2 OFFSET $3
	`
	results := make([]models.SessionResult, 0, models.ResultsPageSize)
	err = s.db.SelectContext(ctx, &results, query, userID, models.ResultsPageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list session results for user %d: %w", userID, err)
	}

	return results, total, nil
}
