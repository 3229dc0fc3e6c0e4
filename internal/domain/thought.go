package domain

import "time"

// Thought is a short text entry posted by an authenticated user. Thoughts are
// not attributed to an author; Hearts starts at zero and has no mutation path.
type Thought struct {
	ID        string
	Message   string
	Hearts    int
	CreatedAt time.Time
}
