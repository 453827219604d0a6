// Package remote implements the REST client for the profile/streak service.
//
// Error mapping is part of the contract: a 404 on the profile means "no
// remote profile yet" and surfaces as common.ErrNotFound, while timeouts
// and any other non-2xx status surface as common.ErrRemoteUnavailable.
// Callers must keep the two apart: the first drives onboarding, the second
// only degrades to local-only operation.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gratitude/internal/client/auth"
	"github.com/dmitrijs2005/gratitude/internal/client/models"
	"github.com/dmitrijs2005/gratitude/internal/common"
)

// DefaultTimeout bounds every remote call. Sized for cold starts on the
// remote compute tier, not for typical latency.
const DefaultTimeout = 30 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	tokens  auth.TokenSource
	timeout time.Duration
}

func NewClient(baseURL string, tokens auth.TokenSource, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		timeout: timeout,
	}
}

// PullProfile fetches the remote profile. 404 maps to common.ErrNotFound.
func (c *Client) PullProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PushProfile uploads the local profile.
func (c *Client) PushProfile(ctx context.Context, p *models.Profile) error {
	return c.do(ctx, http.MethodPut, "/profile", p, nil)
}

// PullStreak fetches the remote streak record. Array fields the server
// omits come back as empty slices, never nil.
func (c *Client) PullStreak(ctx context.Context) (*models.StreakRecord, error) {
	var s models.StreakRecord
	if err := c.do(ctx, http.MethodGet, "/streak", nil, &s); err != nil {
		return nil, err
	}
	s.Normalize()
	return &s, nil
}

// RecordCompletion reports a completed practice day. The server treats the
// call as idempotent per calendar date, so replays are harmless.
func (c *Client) RecordCompletion(ctx context.Context, date string) error {
	body := struct {
		Date string `json:"date"`
	}{Date: date}
	return c.do(ctx, http.MethodPost, "/streak/complete", body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("%w: token source: %v", common.ErrRemoteUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeouts and transport failures are one bucket: never mistake
		// them for an empty-but-successful response.
		return fmt.Errorf("%w: %s %s: %v", common.ErrRemoteUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", common.ErrNotFound, method, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s %s: status %s", common.ErrRemoteUnavailable, method, path, resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %s %s: bad response body: %v", common.ErrRemoteUnavailable, method, path, err)
		}
	}
	return nil
}
