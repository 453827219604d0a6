package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gratitude/internal/client/models"
	"github.com/dmitrijs2005/gratitude/internal/common"
	"github.com/dmitrijs2005/gratitude/internal/dbx"
)

// Record keys. Three logical records, nothing else.
const (
	recordProfile = "profile"
	recordEntries = "entries"
	recordStreak  = "streak"
)

// SQLiteStore implements Store over a records(key, value) table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a SQLiteStore bound to the given database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func getRecord(ctx context.Context, q dbx.DBTX, key string, v any) error {
	var raw []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get record[%s]: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode record[%s]: %w", key, err)
	}
	return nil
}

func setRecord(ctx context.Context, q dbx.DBTX, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode record[%s]: %w", key, err)
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, raw)
	if err != nil {
		return fmt.Errorf("failed to set record[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteStore) Profile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := getRecord(ctx, r.db, recordProfile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteStore) SaveProfile(ctx context.Context, p *models.Profile) error {
	return setRecord(ctx, r.db, recordProfile, p)
}

// SaveEntry reads the current list, prepends and writes it back in one
// transaction so concurrent savers cannot interleave a lost update.
func (r *SQLiteStore) SaveEntry(ctx context.Context, e *models.JournalEntry) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		entries, err := loadEntries(ctx, tx)
		if err != nil {
			return err
		}
		entries = append([]models.JournalEntry{*e}, entries...)
		return setRecord(ctx, tx, recordEntries, entries)
	})
}

func (r *SQLiteStore) Entries(ctx context.Context) ([]models.JournalEntry, error) {
	return loadEntries(ctx, r.db)
}

func (r *SQLiteStore) EntryByDate(ctx context.Context, date string) (*models.JournalEntry, error) {
	entries, err := loadEntries(ctx, r.db)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Date == date {
			return &e, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *SQLiteStore) Streak(ctx context.Context) (*models.StreakRecord, error) {
	var s models.StreakRecord
	if err := getRecord(ctx, r.db, recordStreak, &s); err != nil {
		return nil, err
	}
	s.Normalize()
	return &s, nil
}

func (r *SQLiteStore) SaveStreak(ctx context.Context, s *models.StreakRecord) error {
	return setRecord(ctx, r.db, recordStreak, s)
}

// Export reads all three records inside one transaction for a consistent
// snapshot. Missing records come back as nil/empty, not as errors.
func (r *SQLiteStore) Export(ctx context.Context) (*models.Backup, error) {
	backup := &models.Backup{Entries: []models.JournalEntry{}}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var p models.Profile
		switch err := getRecord(ctx, tx, recordProfile, &p); {
		case err == nil:
			backup.Profile = &p
		case !errors.Is(err, common.ErrNotFound):
			return err
		}

		entries, err := loadEntries(ctx, tx)
		if err != nil {
			return err
		}
		backup.Entries = entries

		var s models.StreakRecord
		switch err := getRecord(ctx, tx, recordStreak, &s); {
		case err == nil:
			s.Normalize()
			backup.Streak = &s
		case !errors.Is(err, common.ErrNotFound):
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return backup, nil
}

func (r *SQLiteStore) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM records`)
	if err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}

func loadEntries(ctx context.Context, q dbx.DBTX) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := getRecord(ctx, q, recordEntries, &entries)
	if errors.Is(err, common.ErrNotFound) {
		return []models.JournalEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	return entries, nil
}
