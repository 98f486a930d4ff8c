package models

import "time"

// ResultsPageSize is how many finished sessions one history page holds.
const ResultsPageSize = 10

type SessionResult struct {
	UserID     int64     `db:"user_id"`
	SessionID  string    `db:"session_id"`
	Mode       string    `db:"mode"`
	CardCount  int       `db:"card_count"`
	Weak       int       `db:"weak_count"`
	Medium     int       `db:"medium_count"`
	Strong     int       `db:"strong_count"`
	Accuracy   int       `db:"accuracy"`
	FinishedAt time.Time `db:"finished_at"`
}

type SessionStats struct {
	TotalSessions int `db:"total_sessions"`
	TotalRated    int `db:"total_rated"`
	StrongCount   int `db:"strong_count"`
	BestAccuracy  int `db:"best_accuracy"`
}
