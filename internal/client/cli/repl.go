package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	DemoLogin(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Feed(ctx context.Context, page int) error
	UserTweets(ctx context.Context, username string, page int) error
	Search(ctx context.Context, query string) error
	Post(ctx context.Context) error
	Like(ctx context.Context, id int64) error
	Unlike(ctx context.Context, id int64) error
	Retweet(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Comments(ctx context.Context, id int64) error
	Comment(ctx context.Context, id int64, text string) error
	Images(ctx context.Context, query string) error
	Suggest(ctx context.Context) error
	ResendVerification(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	ConfirmResetPassword(ctx context.Context) error
	VerifyEmail(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the twitterclone CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("twc %s> ", statusFn()))
		if !scanner.Scan() {
			return
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
			if a.isLoggedIn() {
				printlnFn("Available commands: feed [page], user <name> [page], search <query>, post, like <id>, unlike <id>, retweet <id>, comment <id> <text>, comments <id>, delete <id>, images <query>, suggest, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, demo, register, verify, resend, resetpw, resetconfirm, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "demo":
			_ = a.DemoLogin(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "feed":
			_ = a.Feed(ctx, parsePage(args))

		case "user":
			if len(args) == 0 {
				printlnFn("Usage: user <username> [page]")
				continue
			}
			_ = a.UserTweets(ctx, args[0], parsePage(args[1:]))

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "post":
			_ = a.Post(ctx)

		case "like", "unlike", "retweet", "delete", "comments":
			id, ok := parseID(args)
			if !ok {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			switch cmd {
			case "like":
				_ = a.Like(ctx, id)
			case "unlike":
				_ = a.Unlike(ctx, id)
			case "retweet":
				_ = a.Retweet(ctx, id)
			case "delete":
				_ = a.Delete(ctx, id)
			case "comments":
				_ = a.Comments(ctx, id)
			}

		case "comment":
			id, ok := parseID(args)
			if !ok || len(args) < 2 {
				printlnFn("Usage: comment <id> <text>")
				continue
			}
			_ = a.Comment(ctx, id, strings.Join(args[1:], " "))

		case "images":
			_ = a.Images(ctx, strings.Join(args, " "))

		case "suggest":
			_ = a.Suggest(ctx)

		case "resend":
			_ = a.ResendVerification(ctx)

		case "resetpw":
			_ = a.ResetPassword(ctx)

		case "resetconfirm":
			_ = a.ConfirmResetPassword(ctx)

		case "verify":
			_ = a.VerifyEmail(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// parsePage returns the first argument as a page number, defaulting to 1.
func parsePage(args []string) int {
	if len(args) == 0 {
		return 1
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
