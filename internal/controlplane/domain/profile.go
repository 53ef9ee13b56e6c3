package domain

import "time"

type Profile struct {
	ID           string
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PhoneNumber  string
	PasswordHash string // argon2id PHC string, empty when no password is set
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
