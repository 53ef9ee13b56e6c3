package domain

import "time"

// AiRule is an operator-authored instruction fed to the recommendation prompt.
type AiRule struct {
	ID          string
	Name        string
	Description string
	Category    string
	Content     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
