package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gratitude/internal/client/models"
	"github.com/dmitrijs2005/gratitude/internal/client/repositories/journal"
	"github.com/dmitrijs2005/gratitude/internal/client/suggest"
	"github.com/dmitrijs2005/gratitude/internal/common"
	"github.com/dmitrijs2005/gratitude/internal/cryptox"
	"github.com/dmitrijs2005/gratitude/internal/logging"
	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

// DailyPrompt is what the compose screen shows before the user writes.
type DailyPrompt struct {
	Date            string
	OpeningSentence string
	Suggestions     []string
}

// JournalService owns the daily practice flow: prompting, encrypting,
// persisting and streak bookkeeping. Encryption always completes before
// anything is persisted or pushed; only the remote completion report runs
// in the background.
type JournalService struct {
	store   journal.Store
	sync    *SyncService
	suggest suggest.Suggester
	log     logging.Logger
	now     func() time.Time
}

func NewJournalService(store journal.Store, sync *SyncService, sg suggest.Suggester, log logging.Logger) *JournalService {
	return &JournalService{store: store, sync: sync, suggest: sg, log: log, now: time.Now}
}

// TodayPrompt returns the opening sentence and suggestions for today.
func (s *JournalService) TodayPrompt(ctx context.Context) (*DailyPrompt, error) {
	day := s.now()

	opening, err := s.suggest.OpeningSentence(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get opening sentence: %w", err)
	}
	suggestions, err := s.suggest.Suggestions(ctx, day, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to get suggestions: %w", err)
	}

	return &DailyPrompt{
		Date:            day.Format(dayLayout),
		OpeningSentence: opening,
		Suggestions:     suggestions,
	}, nil
}

// CompleteEntry records today's practice. The text is encrypted under the
// identity before it touches the store; with an empty identity the entry is
// kept as plaintext (legacy/local-only mode). A second entry for the same
// calendar day fails with common.ErrAlreadyExists.
func (s *JournalService) CompleteEntry(ctx context.Context, identity, text string) (*models.JournalEntry, error) {
	now := s.now()
	date := now.Format(dayLayout)

	if _, err := s.store.EntryByDate(ctx, date); err == nil {
		return nil, fmt.Errorf("%w: entry for %s", common.ErrAlreadyExists, date)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	prompt, err := s.TodayPrompt(ctx)
	if err != nil {
		return nil, err
	}

	content := text
	if identity != "" {
		payload, err := cryptox.EncryptText(text, identity)
		if err != nil {
			return nil, fmt.Errorf("encryption error: %w", err)
		}
		content = payload
	}

	streak, err := s.store.Streak(ctx)
	if errors.Is(err, common.ErrNotFound) {
		streak = &models.StreakRecord{}
		streak.Normalize()
	} else if err != nil {
		return nil, err
	}
	if err := streak.UpdateStreak(date); err != nil {
		return nil, err
	}

	entry := &models.JournalEntry{
		EntryID:         uuid.NewString(),
		Date:            date,
		OpeningSentence: prompt.OpeningSentence,
		Suggestions:     prompt.Suggestions,
		UserContent:     models.UserContent{Type: models.ContentTypeText, Content: content},
		CompletedAt:     now,
		StreakDay:       streak.CurrentStreak,
	}

	if err := s.store.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("saving error: %w", err)
	}
	if err := s.store.SaveStreak(ctx, streak); err != nil {
		return nil, fmt.Errorf("streak saving error: %w", err)
	}

	// Fire-and-forget relative to the caller: a slow or down server must
	// never block the save that already happened.
	go s.sync.PushCompletion(context.WithoutCancel(ctx), date)

	return entry, nil
}

// EntryText resolves the displayable text of an entry. Payloads that look
// encrypted are decrypted under the identity; anything else (entries that
// predate encryption) is returned as-is. A decryption failure is returned
// per-entry so one unreadable entry never blocks rendering the rest.
func (s *JournalService) EntryText(ctx context.Context, e *models.JournalEntry, identity string) (string, error) {
	content := e.UserContent.Content
	if !cryptox.LooksEncrypted(content) {
		return content, nil
	}
	if identity == "" {
		// An encrypted payload with no identity to open it is a decryption
		// failure from the reader's point of view, not a key schedule error.
		return "", fmt.Errorf("entry %s: %w: no encryption identity", e.EntryID, common.ErrDecryption)
	}
	text, err := cryptox.DecryptText(content, identity)
	if err != nil {
		return "", fmt.Errorf("entry %s: %w", e.EntryID, err)
	}
	return text, nil
}

// Entries lists all entries, most recent first.
func (s *JournalService) Entries(ctx context.Context) ([]models.JournalEntry, error) {
	return s.store.Entries(ctx)
}

// EntryByDate returns the entry for a calendar day, most recent first on
// duplicates. common.ErrNotFound when the day has no entry.
func (s *JournalService) EntryByDate(ctx context.Context, date string) (*models.JournalEntry, error) {
	return s.store.EntryByDate(ctx, date)
}

// Streak returns the local streak record, empty when nothing was practiced yet.
func (s *JournalService) Streak(ctx context.Context) (*models.StreakRecord, error) {
	streak, err := s.store.Streak(ctx)
	if errors.Is(err, common.ErrNotFound) {
		streak = &models.StreakRecord{}
		streak.Normalize()
		return streak, nil
	}
	return streak, err
}

// Profile returns the cached profile, common.ErrNotFound when none exists.
func (s *JournalService) Profile(ctx context.Context) (*models.Profile, error) {
	return s.store.Profile(ctx)
}

// SaveProfile overwrites the cached profile.
func (s *JournalService) SaveProfile(ctx context.Context, p *models.Profile) error {
	return s.store.SaveProfile(ctx, p)
}

// Export dumps all local data, entry content exactly as stored.
func (s *JournalService) Export(ctx context.Context) (*models.Backup, error) {
	return s.store.Export(ctx)
}

// Wipe irreversibly deletes all local data.
func (s *JournalService) Wipe(ctx context.Context) error {
	return s.store.Clear(ctx)
}
