package domain

import "time"

// User represents a registered account. Characters are owned by users.
type User struct {
	ID        string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
