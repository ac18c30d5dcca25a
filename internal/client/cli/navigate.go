package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bod/internal/client/viewstate"
	"github.com/dmitrijs2005/bod/internal/common"
)

var errNoPage = errors.New("no page selected")

// Navigate activates item and mounts a fresh page for it, which fetches its
// data straight away. Nothing is carried over from an earlier visit.
func (a *App) Navigate(ctx context.Context, item viewstate.Item) error {
	factory, ok := screenFactories[item]
	if !ok {
		return local(fmt.Errorf("navigate %q: %w", item, common.ErrUnknownPage))
	}
	if err := a.view.SetActiveItem(item); err != nil {
		return err
	}

	a.screen = factory(a.deps)
	fmt.Fprintf(a.out, "Loading %s...\n", item)
	err := a.screen.Load(ctx)
	a.screen.Render(a.out, "")
	return err
}

// Menu toggles the navigation overlay and prints it when open.
func (a *App) Menu(context.Context) error {
	if !a.view.ToggleMobileMenu() {
		return nil
	}
	active := a.view.State().ActiveItem
	for _, it := range viewstate.Items() {
		mark := " "
		if it == active {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %s\n", mark, it.Label())
	}
	return nil
}

func (a *App) current() (screen, error) {
	if a.screen == nil {
		return nil, local(errNoPage)
	}
	return a.screen, nil
}

// List prints the active page, filtered by term.
func (a *App) List(_ context.Context, term string) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	s.Render(a.out, term)
	return nil
}

func (a *App) Show(_ context.Context, id int) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	return s.Show(a.out, id)
}

func (a *App) New(ctx context.Context) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	return s.New(ctx, a.form())
}

func (a *App) Edit(ctx context.Context, id int) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	return s.Edit(ctx, a.form(), id)
}

func (a *App) Delete(ctx context.Context, id int) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	return s.Delete(ctx, id)
}

func (a *App) Toggle(ctx context.Context, id int) error {
	s, err := a.current()
	if err != nil {
		return err
	}
	return s.Toggle(ctx, id)
}

// Reload remounts the active page.
func (a *App) Reload(ctx context.Context) error {
	if _, err := a.current(); err != nil {
		return err
	}
	return a.Navigate(ctx, a.view.State().ActiveItem)
}

// Notifications prints the notifications that are still within their life.
func (a *App) Notifications(context.Context) error {
	active := a.recorder.Active(time.Now())
	if len(active) == 0 {
		fmt.Fprintln(a.out, "No notifications")
		return nil
	}
	for _, n := range active {
		fmt.Fprintln(a.out, n.String())
	}
	return nil
}

func (a *App) form() *form {
	return &form{reader: a.reader, w: a.out}
}
