package journal

import (
	"context"

	"github.com/dmitrijs2005/gratitude/internal/client/models"
)

// Store describes the local persistence operations of the journal.
// Implementations are backed by a local SQLite database.
type Store interface {
	// Profile returns the cached profile, or common.ErrNotFound when none
	// has been saved yet.
	Profile(ctx context.Context) (*models.Profile, error)

	// SaveProfile overwrites the cached profile.
	SaveProfile(ctx context.Context, p *models.Profile) error

	// SaveEntry prepends the entry to the stored list (most-recent-first)
	// and persists the whole list. No same-day uniqueness is enforced here;
	// that is the caller's contract.
	SaveEntry(ctx context.Context, e *models.JournalEntry) error

	// Entries returns the full entry list, most recent first.
	Entries(ctx context.Context) ([]models.JournalEntry, error)

	// EntryByDate returns the first entry matching the calendar day, which
	// given prepend ordering is the most recent one. common.ErrNotFound
	// when absent.
	EntryByDate(ctx context.Context, date string) (*models.JournalEntry, error)

	// Streak returns the streak record, or common.ErrNotFound when none
	// has been saved yet.
	Streak(ctx context.Context) (*models.StreakRecord, error)

	// SaveStreak overwrites the streak record.
	SaveStreak(ctx context.Context, s *models.StreakRecord) error

	// Export dumps profile, entries and streak in one consistent snapshot.
	// Content is returned exactly as stored; export never decrypts.
	Export(ctx context.Context) (*models.Backup, error)

	// Clear irreversibly wipes all local data. Must only ever be triggered
	// by an explicit user action.
	Clear(ctx context.Context) error
}
