// Package models defines the client-side data model of the gratitude
// journal: the user profile, daily journal entries and the streak record.
package models

import "time"

// Profile describes the journal owner.
//
// UserID is the stable identity the encryption key is derived from. It is
// set once, at signup or anonymous bootstrap, and never changes: a changed
// UserID is indistinguishable from a brand-new user, and everything
// encrypted under the old identity becomes unrecoverable.
type Profile struct {
	UserID            string    `json:"userId"`
	DisplayName       string    `json:"displayName"`
	CreatedAt         time.Time `json:"createdAt"`
	EncryptionEnabled bool      `json:"encryptionEnabled"`
}

// Backup is the exported form of all local data: content is carried exactly
// as stored, so encrypted entries stay encrypted in the dump.
type Backup struct {
	Profile *Profile       `json:"profile"`
	Entries []JournalEntry `json:"entries"`
	Streak  *StreakRecord  `json:"streak"`
}
