package models

import "time"

type RefreshToken struct {
	ID         string
	IdentityID string
	Token      string
	Expires    time.Time
	CreatedAt  time.Time
}
