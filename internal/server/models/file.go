package models

import "time"

// File is the metadata row for an uploaded attachment. The bytes live in
// object storage under StorageKey; listings expose a short-lived signed URL.
type File struct {
	ID            string
	ParticipantID string
	Name          string
	Size          int64
	ContentType   string
	StorageKey    string
	CreatedAt     time.Time
}
