// Package cli implements the interactive REPL of the gratitude journal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/gratitude/internal/client/auth"
	"github.com/dmitrijs2005/gratitude/internal/client/config"
	"github.com/dmitrijs2005/gratitude/internal/client/models"
	"github.com/dmitrijs2005/gratitude/internal/client/remote"
	"github.com/dmitrijs2005/gratitude/internal/client/repositories/journal"
	"github.com/dmitrijs2005/gratitude/internal/client/services"
	"github.com/dmitrijs2005/gratitude/internal/client/suggest"
	"github.com/dmitrijs2005/gratitude/internal/common"
	"github.com/dmitrijs2005/gratitude/internal/logging"
	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	journal *services.JournalService
	sync    *services.SyncService
	tokens  *auth.StaticTokenSource
	profile *models.Profile
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewText(os.Stderr, slog.LevelInfo)

	db, err := journal.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	store := journal.NewSQLiteStore(db)
	tokens := auth.NewStaticTokenSource(c.AuthToken)
	api := remote.NewClient(c.ServerBaseURL, tokens, c.RequestTimeout)

	syncService := services.NewSyncService(store, api, tokens, log)
	journalService := services.NewJournalService(store, syncService, suggest.NewStatic(), log)

	return &App{
		config:  c,
		journal: journalService,
		sync:    syncService,
		tokens:  tokens,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	if err := a.bootstrap(ctx); err != nil {
		a.log.Error(ctx, "startup failed", "err", err)
		return
	}
	a.Root(ctx)
}

// bootstrap resolves the profile: local cache first, then the remote copy,
// and finally an anonymous local identity when neither exists. A remote 404
// means "fresh start" and is not an error; a remote failure just leaves us
// local-only.
func (a *App) bootstrap(ctx context.Context) error {
	profile, err := a.journal.Profile(ctx)
	if err == nil {
		a.profile = profile
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	pulled, err := a.sync.PullProfile(ctx)
	switch {
	case err == nil:
		a.profile = pulled
		return nil
	case errors.Is(err, common.ErrNotFound):
		// No remote profile either: onboard a fresh anonymous identity.
	case errors.Is(err, common.ErrRemoteUnavailable):
		a.log.Warn(ctx, "remote unreachable, starting local-only")
	default:
		return err
	}

	name, err := GetSimpleText(a.reader, "What should we call you?", os.Stdout)
	if err != nil {
		name = ""
	}

	a.profile = &models.Profile{
		UserID:            uuid.NewString(),
		DisplayName:       name,
		CreatedAt:         time.Now().UTC(),
		EncryptionEnabled: true,
	}
	if err := a.journal.SaveProfile(ctx, a.profile); err != nil {
		return err
	}

	go a.sync.PushProfile(context.WithoutCancel(ctx), a.profile)
	return nil
}

// identity is the encryption identity of the current user; empty disables
// encryption (entries stored as plaintext).
func (a *App) identity() string {
	if a.profile == nil || !a.profile.EncryptionEnabled {
		return ""
	}
	return a.profile.UserID
}
