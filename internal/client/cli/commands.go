package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/gratitude/internal/common"
)

// today runs the daily practice flow: show the prompt, collect the text,
// save it encrypted.
func (a *App) today(ctx context.Context) {
	prompt, err := a.journal.TodayPrompt(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(prompt.OpeningSentence)
	fmt.Println("Some ideas:", strings.Join(prompt.Suggestions, ", "))

	text, err := GetMultiline(a.reader, "What are you grateful for today?", os.Stdout)
	if err != nil || text == "" {
		fmt.Println("Nothing saved.")
		return
	}

	entry, err := a.journal.CompleteEntry(ctx, a.identity(), text)
	if errors.Is(err, common.ErrAlreadyExists) {
		fmt.Println("You already journaled today. See you tomorrow!")
		return
	}
	if err != nil {
		fmt.Println("Error saving entry:", err)
		return
	}

	fmt.Printf("Saved. Day %d of your streak.\n", entry.StreakDay)
}

func (a *App) list(ctx context.Context) {
	entries, err := a.journal.Entries(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No entries yet. Try 'today'.")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.Date, e.OpeningSentence)
	}
}

func (a *App) show(ctx context.Context, date string) {
	entry, err := a.journal.EntryByDate(ctx, date)
	if errors.Is(err, common.ErrNotFound) {
		fmt.Println("No entry for", date)
		return
	}
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	text, err := a.journal.EntryText(ctx, entry, a.identity())
	if errors.Is(err, common.ErrDecryption) {
		fmt.Println("This entry cannot be decrypted with your identity.")
		return
	}
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("%s (day %d)\n%s\n\n%s\n", entry.Date, entry.StreakDay, entry.OpeningSentence, text)
}

func (a *App) streak(ctx context.Context) {
	streak, err := a.journal.Streak(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Current streak: %d day(s)\nLongest streak: %d day(s)\nTotal days practiced: %d\n",
		streak.CurrentStreak, streak.LongestStreak, streak.TotalDaysPracticed)
}

// syncNow pulls the remote profile and streak. A 404 is a fresh start, not
// an error; a failure just means we stay on local data.
func (a *App) syncNow(ctx context.Context) {
	profile, err := a.sync.PullProfile(ctx)
	switch {
	case err == nil:
		a.profile = profile
		fmt.Println("Profile synced.")
	case errors.Is(err, common.ErrNotFound):
		fmt.Println("No remote profile yet.")
	default:
		fmt.Println("Sync unavailable, local data remains authoritative.")
		return
	}

	if _, err := a.sync.PullStreak(ctx); err == nil {
		fmt.Println("Streak synced.")
	}
}

func (a *App) export(ctx context.Context) {
	backup, err := a.journal.Export(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	out, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(string(out))
}

// login reads a bearer token without echo and installs it into the running
// token source, so sync comes alive without a restart.
func (a *App) login(ctx context.Context) {
	secret, err := GetSecret("Paste your access token", os.Stdout)
	if err != nil {
		fmt.Println("Error reading token:", err)
		return
	}
	token := strings.TrimSpace(string(secret))
	if token == "" {
		fmt.Println("No token entered, nothing changed.")
		return
	}

	a.tokens.SetToken(token)
	a.config.AuthToken = token
	fmt.Println("Token saved. Run 'sync' to pull your remote data.")
}

func (a *App) wipe(ctx context.Context) {
	answer, err := GetSimpleText(a.reader, "Delete ALL local data? This cannot be undone. Type 'yes' to confirm.", os.Stdout)
	if err != nil || answer != "yes" {
		fmt.Println("Wipe cancelled.")
		return
	}
	if err := a.journal.Wipe(ctx); err != nil {
		fmt.Println("Error:", err)
		return
	}
	a.profile = nil
	fmt.Println("All local data deleted.")
}
