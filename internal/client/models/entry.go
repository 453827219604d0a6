package models

import "time"

// ContentType classifies the user part of an entry.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeAudio ContentType = "audio"
)

// UserContent is what the user actually recorded. Content holds either
// plaintext or an encrypted payload; the store does not care which, and the
// classifier in cryptox decides at render time.
type UserContent struct {
	Type    ContentType `json:"type"`
	Content string      `json:"content"`
	// Duration is the audio length in seconds; zero for text.
	Duration int `json:"duration,omitempty"`
}

// JournalEntry is one completed daily practice. Entries are created once,
// never mutated afterwards, and only deleted by a full data wipe. One entry
// per calendar day is the intended cardinality, enforced by the service
// layer rather than the store.
type JournalEntry struct {
	EntryID         string      `json:"entryId"`
	Date            string      `json:"date"` // YYYY-MM-DD
	OpeningSentence string      `json:"openingSentence"`
	Suggestions     []string    `json:"suggestions"`
	UserContent     UserContent `json:"userContent"`
	CompletedAt     time.Time   `json:"completedAt"`
	StreakDay       int         `json:"streakDay"`
}
