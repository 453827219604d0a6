// Package services contains the application services of the gratitude
// client: composing and reading journal entries, and reconciling local
// state with the remote profile/streak service.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gratitude/internal/client/auth"
	"github.com/dmitrijs2005/gratitude/internal/client/models"
	"github.com/dmitrijs2005/gratitude/internal/client/repositories/journal"
	"github.com/dmitrijs2005/gratitude/internal/common"
	"github.com/dmitrijs2005/gratitude/internal/logging"
)

// RemoteAPI is the surface of the remote profile/streak service consumed by
// the sync coordinator. remote.Client is the production implementation;
// tests substitute stubs.
type RemoteAPI interface {
	PullProfile(ctx context.Context) (*models.Profile, error)
	PushProfile(ctx context.Context, p *models.Profile) error
	PullStreak(ctx context.Context) (*models.StreakRecord, error)
	RecordCompletion(ctx context.Context, date string) error
}

// SyncService reconciles the local journal store with the remote service.
// Local data is authoritative: pushes are best-effort and pull failures
// degrade to local-only operation instead of surfacing to the user.
type SyncService struct {
	store  journal.Store
	remote RemoteAPI
	tokens auth.TokenSource
	log    logging.Logger
	now    func() time.Time
}

func NewSyncService(store journal.Store, remote RemoteAPI, tokens auth.TokenSource, log logging.Logger) *SyncService {
	return &SyncService{store: store, remote: remote, tokens: tokens, log: log, now: time.Now}
}

// remoteEnabled reports whether remote calls are worth attempting: a
// missing or expired bearer token short-circuits sync to a local no-op.
func (s *SyncService) remoteEnabled(ctx context.Context) bool {
	token, err := s.tokens.Token(ctx)
	if err != nil || token == "" {
		return false
	}
	if auth.Expired(token, s.now()) {
		s.log.Debug(ctx, "bearer token expired, staying local-only")
		return false
	}
	return true
}

// PullProfile fetches the remote profile and overwrites the local cache on
// success. common.ErrNotFound (no remote profile) is a valid state that
// drives onboarding and is kept distinct from common.ErrRemoteUnavailable.
func (s *SyncService) PullProfile(ctx context.Context) (*models.Profile, error) {
	if !s.remoteEnabled(ctx) {
		return nil, fmt.Errorf("%w: sync disabled (no usable token)", common.ErrRemoteUnavailable)
	}

	p, err := s.remote.PullProfile(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to cache pulled profile: %w", err)
	}
	return p, nil
}

// PushProfile uploads the profile in the background sense: a failure is
// logged and swallowed, never returned, and local state stays untouched.
func (s *SyncService) PushProfile(ctx context.Context, p *models.Profile) {
	if !s.remoteEnabled(ctx) {
		s.log.Debug(ctx, "profile push skipped, sync disabled")
		return
	}
	if err := s.remote.PushProfile(ctx, p); err != nil {
		s.log.Warn(ctx, "profile push failed, local state remains authoritative", "err", err)
	}
}

// PullStreak fetches the remote streak and merges it into the local cache.
// Remote scalar fields win; array fields the server omits are defaulted to
// empty, and an empty remote array does not erase richer local history.
func (s *SyncService) PullStreak(ctx context.Context) (*models.StreakRecord, error) {
	if !s.remoteEnabled(ctx) {
		return nil, fmt.Errorf("%w: sync disabled (no usable token)", common.ErrRemoteUnavailable)
	}

	pulled, err := s.remote.PullStreak(ctx)
	if err != nil {
		return nil, err
	}
	pulled.Normalize()

	if local, err := s.store.Streak(ctx); err == nil {
		if len(pulled.PracticeDates) == 0 {
			pulled.PracticeDates = local.PracticeDates
		}
		if len(pulled.MilestonesAchieved) == 0 {
			pulled.MilestonesAchieved = local.MilestonesAchieved
		}
	}

	if err := s.store.SaveStreak(ctx, pulled); err != nil {
		return nil, fmt.Errorf("failed to cache pulled streak: %w", err)
	}
	return pulled, nil
}

// PushCompletion reports a completed practice day, best-effort. The server
// call is idempotent per date, so retries on a later day are safe.
func (s *SyncService) PushCompletion(ctx context.Context, date string) {
	if !s.remoteEnabled(ctx) {
		s.log.Debug(ctx, "completion push skipped, sync disabled", "date", date)
		return
	}
	if err := s.remote.RecordCompletion(ctx, date); err != nil {
		s.log.Warn(ctx, "completion push failed, local state remains authoritative", "date", date, "err", err)
	}
}
