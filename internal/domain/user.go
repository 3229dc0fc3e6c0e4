package domain

import "time"

// User represents a registered account. AccessToken is the opaque bearer
// credential issued once at registration and never rotated afterwards.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	AccessToken  string
	CreatedAt    time.Time
}
