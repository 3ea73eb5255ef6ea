package models

import "time"

// Message is one entry in a participant's conversation thread.
type Message struct {
	ID             string
	ParticipantID  string
	SenderIsClient bool
	Content        string
	CreatedAt      time.Time
}
