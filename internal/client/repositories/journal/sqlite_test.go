package journal

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/gratitude/internal/client/models"
	"github.com/dmitrijs2005/gratitude/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE records (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func testEntry(id, date string) *models.JournalEntry {
	return &models.JournalEntry{
		EntryID:         id,
		Date:            date,
		OpeningSentence: "Today I appreciate...",
		Suggestions:     []string{"a walk", "a friend"},
		UserContent:     models.UserContent{Type: models.ContentTypeText, Content: "content-" + id},
		CompletedAt:     time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC),
		StreakDay:       1,
	}
}

func TestSaveEntry_PrependsMostRecentFirst(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, r.SaveEntry(ctx, testEntry("e1", "2024-01-01")))
	require.NoError(t, r.SaveEntry(ctx, testEntry("e2", "2024-01-02")))
	require.NoError(t, r.SaveEntry(ctx, testEntry("e3", "2024-01-03")))

	entries, err := r.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "e3", entries[0].EntryID)
	assert.Equal(t, "e2", entries[1].EntryID)
	assert.Equal(t, "e1", entries[2].EntryID)
}

func TestEntries_EmptyStore(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)

	entries, err := r.Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryByDate_MostRecentWinsOnDuplicates(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)
	ctx := context.Background()

	// The store does not enforce one-entry-per-day; with prepend ordering
	// a linear scan must return the most recently saved duplicate.
	require.NoError(t, r.SaveEntry(ctx, testEntry("older", "2024-01-05")))
	require.NoError(t, r.SaveEntry(ctx, testEntry("newer", "2024-01-05")))

	got, err := r.EntryByDate(ctx, "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, "newer", got.EntryID)
}

func TestEntryByDate_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)

	_, err := r.EntryByDate(context.Background(), "2024-01-05")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestProfile_RoundTripAndOverwrite(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)
	ctx := context.Background()

	_, err := r.Profile(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	p := &models.Profile{UserID: "u1", DisplayName: "Alice", EncryptionEnabled: true}
	require.NoError(t, r.SaveProfile(ctx, p))

	got, err := r.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	p2 := &models.Profile{UserID: "u1", DisplayName: "Alice B."}
	require.NoError(t, r.SaveProfile(ctx, p2))

	got, err = r.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", got.DisplayName)
}

func TestStreak_RoundTripNormalizesArrays(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)
	ctx := context.Background()

	_, err := r.Streak(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, r.SaveStreak(ctx, &models.StreakRecord{CurrentStreak: 2}))

	got, err := r.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStreak)
	assert.NotNil(t, got.PracticeDates)
	assert.NotNil(t, got.MilestonesAchieved)
}

func TestExport_SnapshotKeepsContentAsStored(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, r.SaveProfile(ctx, &models.Profile{UserID: "u1"}))
	e := testEntry("e1", "2024-01-01")
	e.UserContent.Content = "T3BhcXVlRW5jcnlwdGVkUGF5bG9hZEJhc2U2NFN0cmluZ0hlcmU="
	require.NoError(t, r.SaveEntry(ctx, e))
	require.NoError(t, r.SaveStreak(ctx, &models.StreakRecord{CurrentStreak: 1}))

	backup, err := r.Export(ctx)
	require.NoError(t, err)
	require.NotNil(t, backup.Profile)
	require.NotNil(t, backup.Streak)
	require.Len(t, backup.Entries, 1)
	// Export is not a decryption operation.
	assert.Equal(t, e.UserContent.Content, backup.Entries[0].UserContent.Content)
}

func TestExport_EmptyStore(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)

	backup, err := r.Export(context.Background())
	require.NoError(t, err)
	assert.Nil(t, backup.Profile)
	assert.Nil(t, backup.Streak)
	assert.Empty(t, backup.Entries)
}

func TestClear_WipesEverything(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, r.SaveProfile(ctx, &models.Profile{UserID: "u1"}))
	require.NoError(t, r.SaveEntry(ctx, testEntry("e1", "2024-01-01")))
	require.NoError(t, r.SaveStreak(ctx, &models.StreakRecord{CurrentStreak: 1}))

	require.NoError(t, r.Clear(ctx))

	_, err := r.Profile(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)
	entries, err := r.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
	_, err = r.Streak(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := NewSQLiteStore(db)
	require.NoError(t, r.SaveProfile(ctx, &models.Profile{UserID: "u1"}))
	got, err := r.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}
