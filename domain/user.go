package domain

import "time"

// User represents a registered identity together with its progression state.
type User struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Credential          string    `json:"credential,omitempty"`
	JoinedAt            time.Time `json:"joined_at"`
	XP                  int       `json:"xp"`
	Level               int       `json:"level"`
	Streak              int       `json:"streak"`
	BestStreak          int       `json:"best_streak"`
	LastActiveDate      string    `json:"last_active_date,omitempty"` // YYYY-MM-DD
	TotalTasksCompleted int       `json:"total_tasks_completed"`
}

// Sanitized returns a copy safe to hand to transport layers.
func (u User) Sanitized() User {
	u.Credential = ""
	return u
}
