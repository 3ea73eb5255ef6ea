package models

import "time"

// Company is the onboarding artifact. An identity with a company row
// has completed onboarding; one without has not.
type Company struct {
	ID         string
	IdentityID string
	Name       string
	VatID      string
	Address    string
	CreatedAt  time.Time
}
