package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bod/internal/client/viewstate"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Navigate(ctx context.Context, item viewstate.Item) error
	Menu(ctx context.Context) error
	List(ctx context.Context, term string) error
	Show(ctx context.Context, id int) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	Toggle(ctx context.Context, id int) error
	Reload(ctx context.Context) error
	Notifications(ctx context.Context) error
}

// localError marks a failure that no notification has reported yet, such
// as an unknown id typed at the prompt. The REPL prints these.
type localError struct {
	err error
}

func (e *localError) Error() string { return e.err.Error() }
func (e *localError) Unwrap() error { return e.err }

func local(err error) error {
	if err == nil {
		return nil
	}
	return &localError{err: err}
}

func report(err error) {
	var le *localError
	if errors.As(err, &le) {
		printlnFn("Error:", le.Error())
	}
}

// idArg parses the single id argument of show/edit/delete/toggle.
func idArg(cmd string, args []string) (int, bool) {
	if len(args) != 1 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, false
	}
	return id, true
}

// runREPL starts a simple read–eval–print loop for the BOD console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - dashboard | users | posts | albums | todos
//	                   open a page (fetches fresh data)
//	  - menu           toggle the navigation overlay
//	  - list [term]    print the page, optionally filtered
//	  - show <id>      print one record
//	  - new            create a record
//	  - edit <id>      edit a record
//	  - delete <id>    delete a record
//	  - toggle <id>    flip a todo's completion
//	  - reload         fetch the page again
//	  - notifications  print visible notifications
//	  - whoami         print the logged in user
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Failures already reported as notifications are not printed again; only
// local errors (bad ids, unavailable commands) are.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bod%s> ", prefixed(statusFn())))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, users, posts, albums, todos, menu, (l)ist [term], show <id>, new, edit <id>, delete <id>, toggle <id>, reload, notifications, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
			continue

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in")
				continue
			}
			if a.Login(ctx) == nil {
				report(a.Navigate(ctx, viewstate.Dashboard))
			}
			continue
		}

		if !a.isLoggedIn() {
			printlnFn("Please log in first")
			continue
		}

		if item, err := viewstate.ParseItem(cmd); err == nil {
			report(a.Navigate(ctx, item))
			continue
		}

		switch cmd {
		case "menu":
			report(a.Menu(ctx))

		case "l", "list":
			report(a.List(ctx, strings.Join(args, " ")))

		case "show", "edit", "delete", "toggle":
			id, ok := idArg(cmd, args)
			if !ok {
				continue
			}
			switch cmd {
			case "show":
				report(a.Show(ctx, id))
			case "edit":
				report(a.Edit(ctx, id))
			case "delete":
				report(a.Delete(ctx, id))
			case "toggle":
				report(a.Toggle(ctx, id))
			}

		case "new":
			report(a.New(ctx))

		case "reload":
			report(a.Reload(ctx))

		case "notifications":
			report(a.Notifications(ctx))

		case "whoami":
			report(a.Whoami(ctx))

		case "logout":
			report(a.Logout(ctx))

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func prefixed(status string) string {
	if status == "" {
		return ""
	}
	return " " + status
}
