package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.profile == nil {
		return ""
	}
	name := a.profile.DisplayName
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("(%s)", name)
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to your gratitude journal (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("gj %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Available commands: today, (l)ist, show <date>, streak, sync, login, export, wipe, exit")

		case "today":
			a.today(ctx)
		case "l", "list":
			a.list(ctx)
		case "show":
			if len(args) == 0 {
				fmt.Println("Usage: show <YYYY-MM-DD>")
				continue
			}
			a.show(ctx, args[0])
		case "streak":
			a.streak(ctx)
		case "sync":
			a.syncNow(ctx)
		case "login":
			a.login(ctx)
		case "export":
			a.export(ctx)
		case "wipe":
			a.wipe(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
