// Package models defines the client-side view of portal data: the signed-in
// identity, onboarding state, and conversation records. All types are plain
// data; ownership and mutation rules live in the components that hold them.
package models

import "time"

// Identity is the currently signed-in principal.
type Identity struct {
	ID    string
	Email string
}

// OnboardingStatus is the cached result of an onboarding lookup for one
// identity. Err is non-nil when the last lookup failed; Completed is then
// reported false so callers route toward onboarding rather than content.
type OnboardingStatus struct {
	IdentityID    string
	Completed     bool
	CompanyID     string
	LastCheckedAt time.Time
	Err           error
}

// Message is one entry of a participant's thread. Pending marks an
// optimistic local append that the server has not confirmed yet.
type Message struct {
	ID             string
	SenderIsClient bool
	Content        string
	CreatedAt      time.Time
	Pending        bool
}

// FileRecord is a file attachment with a short-lived download URL.
// File metadata is server-authoritative; there is no pending variant.
type FileRecord struct {
	ID          string
	Name        string
	Size        int64
	ContentType string
	URL         string
	CreatedAt   time.Time
}
