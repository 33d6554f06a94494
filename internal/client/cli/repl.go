package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Home(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	ClearFilters(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	UpdateProfile(ctx context.Context) error

	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	DeletePost(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	DeleteComment(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the client CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Placement interview experiences CLI (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("pp %s> ", statusFn()))
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
			printlnFn("Browse:  home, search [text], filter <field> <value>, next, prev, clear, show <id>, profile <userId>")
			if a.isLoggedIn() {
				printlnFn("Account: whoami, update, logout")
				printlnFn("Posts:   create, edit <id>, delete <id>, like <id>, comment <id>, delcomment <postId> <commentId>, dashboard")
			} else {
				printlnFn("Account: login, register")
			}
			printlnFn("Other:   exit")

		case "home":
			_ = a.Home(ctx)

		case "search", "s":
			_ = a.Search(ctx, args)

		case "filter":
			_ = a.Filter(ctx, args)

		case "next":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "clear":
			_ = a.ClearFilters(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "profile":
			_ = a.Profile(ctx, args)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "delete":
			_ = a.DeletePost(ctx, args)

		case "like":
			_ = a.Like(ctx, args)

		case "comment":
			_ = a.Comment(ctx, args)

		case "delcomment":
			_ = a.DeleteComment(ctx, args)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
