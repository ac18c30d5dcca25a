package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/bod/internal/client/notify"
	"github.com/dmitrijs2005/bod/internal/common"
)

const (
	loginValidationSummary = "Validation Error"
	loginValidationDetail  = "Please fill in all required fields"
)

// loginScreen repeats Login until it succeeds. It gives up only when the
// input is exhausted or ctx is done.
func (a *App) loginScreen(ctx context.Context) error {
	a.printDemoAccounts()
	for !a.isLoggedIn() {
		err := a.Login(ctx)
		if errors.Is(err, io.EOF) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return nil
}

func (a *App) printDemoAccounts() {
	var hints []string
	for _, p := range a.session.Accounts() {
		if pw, ok := a.session.DemoCredentials(p.Username); ok {
			hints = append(hints, fmt.Sprintf("%s: %s/%s", p.Name, p.Username, pw))
		}
	}
	if len(hints) > 0 {
		fmt.Fprintln(a.out, "Demo Accounts | "+strings.Join(hints, " | "))
	}
}

// Login prompts for a username and a hidden password and authenticates
// against the built-in accounts.
//
// Missing fields are reported inline and with a validation notification
// without calling the session service. The outcome of an attempt is
// reported as "Welcome!" or "Login Failed".
func (a *App) Login(ctx context.Context) error {
	a.session.ClearError()

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	var missing []string
	if strings.TrimSpace(username) == "" {
		missing = append(missing, "Username is required")
	}
	if password == "" {
		missing = append(missing, "Password is required")
	}
	if len(missing) > 0 {
		for _, m := range missing {
			fmt.Fprintln(a.out, m)
		}
		notify.Warn(ctx, a.deps.Notifier, loginValidationSummary, loginValidationDetail)
		return fmt.Errorf("login: %w", common.ErrorValidation)
	}

	fmt.Fprintln(a.out, "Signing In...")
	profile, err := a.session.Login(ctx, username, password)
	if err != nil {
		msg := a.session.State().Error
		if msg == "" {
			msg = err.Error()
		}
		notify.Error(ctx, a.deps.Notifier, "Login Failed", msg)
		return err
	}

	notify.Success(ctx, a.deps.Notifier, "Welcome!", "Logged in as "+profile.Name)
	return nil
}

// Logout forgets the session and drops the active page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.screen = nil
	a.view.SetMobileMenu(false)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami prints the logged in user.
func (a *App) Whoami(context.Context) error {
	u := a.user()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s) <%s> role=%s\n", u.Name, u.Username, u.Email, u.Role)
	return nil
}
