package models

import "time"

// Identity is a portal account. Its ID doubles as the participant id
// for the account's conversation.
type Identity struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
