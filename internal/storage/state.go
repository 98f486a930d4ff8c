package storage

import "github.com/DanRulev/easyflash.git/internal/session"

// UserState is everything the controller remembers about one user between
// requests. The zero value is a user with no filter and no session.
type UserState struct {
	CategoryID   int64         `json:"categoryId"`
	Session      session.State `json:"session"`
	LastAccuracy int           `json:"lastAccuracy"`
	HasFinished  bool          `json:"hasFinished"`
}
