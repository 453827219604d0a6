package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gratitude/internal/client/auth"
	"github.com/dmitrijs2005/gratitude/internal/client/models"
	"github.com/dmitrijs2005/gratitude/internal/client/repositories/journal"
	"github.com/dmitrijs2005/gratitude/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) journal.Store {
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

	return journal.NewSQLiteStore(db)
}

// stubRemote is a scriptable RemoteAPI double that records calls.
type stubRemote struct {
	mu sync.Mutex

	profile     *models.Profile
	profileErr  error
	streak      *models.StreakRecord
	streakErr   error
	pushErr     error
	completeErr error

	pushed      []models.Profile
	completions []string
	calls       int
}

func (r *stubRemote) PullProfile(ctx context.Context) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.profileErr != nil {
		return nil, r.profileErr
	}
	return r.profile, nil
}

func (r *stubRemote) PushProfile(ctx context.Context, p *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.pushed = append(r.pushed, *p)
	return r.pushErr
}

func (r *stubRemote) PullStreak(ctx context.Context) (*models.StreakRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.streakErr != nil {
		return nil, r.streakErr
	}
	cp := *r.streak
	return &cp, nil
}

func (r *stubRemote) RecordCompletion(ctx context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.completions = append(r.completions, date)
	return r.completeErr
}

func (r *stubRemote) completionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.completions)
}

func (r *stubRemote) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func newTestSync(store journal.Store, remote RemoteAPI, token string) *SyncService {
	return NewSyncService(store, remote, auth.NewStaticTokenSource(token), logging.Discard())
}
