package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/client/pages"
	"github.com/dmitrijs2005/bod/internal/client/viewstate"
	"github.com/dmitrijs2005/bod/internal/common"
	"github.com/gosuri/uitable"
)

var errUnsupported = errors.New("not available on this page")

// screen is what the shell needs from the active page.
type screen interface {
	Load(ctx context.Context) error
	Render(w io.Writer, term string)
	Show(w io.Writer, id int) error
	New(ctx context.Context, f *form) error
	Edit(ctx context.Context, f *form, id int) error
	Delete(ctx context.Context, id int) error
	Toggle(ctx context.Context, id int) error
}

const maxColWidth = 50

func newTable() *uitable.Table {
	t := uitable.New()
	t.MaxColWidth = maxColWidth
	t.Wrap = true
	return t
}

// recordScreen adapts a page controller to the shell: one table, a detail
// view and a form per record type.
type recordScreen[T models.Record[T]] struct {
	ctrl    *pages.Controller[T]
	columns []any
	row     func(c *pages.Controller[T], rec T) []any
	detail  func(c *pages.Controller[T], rec T) [][2]string
	fill    func(f *form, rec T) (T, error)
	toggle  func(ctx context.Context, id int) error
}

func (s *recordScreen[T]) Load(ctx context.Context) error {
	return s.ctrl.Load(ctx)
}

func (s *recordScreen[T]) Render(w io.Writer, term string) {
	all := s.ctrl.Items()
	shown := s.ctrl.Search(term)

	fmt.Fprintf(w, "Manage %s\n", s.ctrl.Plural())
	if msg := s.ctrl.Error(); msg != "" && len(all) == 0 {
		fmt.Fprintf(w, "Error: %s\n", msg)
		return
	}

	t := newTable()
	t.AddRow(s.columns...)
	for _, rec := range shown {
		t.AddRow(s.row(s.ctrl, rec)...)
	}
	fmt.Fprintln(w, t)
	fmt.Fprintf(w, "%d of %d %s\n", len(shown), len(all), strings.ToLower(s.ctrl.Plural()))
}

func (s *recordScreen[T]) lookup(id int) (T, error) {
	rec, ok := s.ctrl.Get(id)
	if !ok {
		return rec, local(fmt.Errorf("%s %d: %w", strings.ToLower(s.ctrl.Noun()), id, common.ErrorNotFound))
	}
	return rec, nil
}

func (s *recordScreen[T]) Show(w io.Writer, id int) error {
	rec, err := s.lookup(id)
	if err != nil {
		return err
	}
	t := newTable()
	t.AddRow("ID", strconv.Itoa(rec.RecordID()))
	for _, kv := range s.detail(s.ctrl, rec) {
		t.AddRow(kv[0], kv[1])
	}
	fmt.Fprintln(w, t)
	return nil
}

func (s *recordScreen[T]) New(ctx context.Context, f *form) error {
	fmt.Fprintf(f.w, "New %s\n", s.ctrl.Noun())
	var zero T
	rec, err := s.fill(f, zero)
	if err != nil {
		return local(err)
	}
	_, err = s.ctrl.Create(ctx, rec)
	return err
}

func (s *recordScreen[T]) Edit(ctx context.Context, f *form, id int) error {
	cur, err := s.lookup(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(f.w, "Edit %s\n", s.ctrl.Noun())
	rec, err := s.fill(f, cur)
	if err != nil {
		return local(err)
	}
	_, err = s.ctrl.Update(ctx, rec.WithID(id))
	return err
}

func (s *recordScreen[T]) Delete(ctx context.Context, id int) error {
	return s.ctrl.Delete(ctx, id)
}

func (s *recordScreen[T]) Toggle(ctx context.Context, id int) error {
	if s.toggle == nil {
		return local(fmt.Errorf("toggle: %w", errUnsupported))
	}
	return s.toggle(ctx, id)
}

func newUsersScreen(d pages.Deps) screen {
	return &recordScreen[models.User]{
		ctrl:    pages.NewUsers(d),
		columns: []any{"ID", "Name", "Email", "Phone", "Company"},
		row: func(_ *pages.Controller[models.User], u models.User) []any {
			return []any{u.ID, u.Name, u.Email, u.Phone, u.Company.Name}
		},
		detail: func(_ *pages.Controller[models.User], u models.User) [][2]string {
			return [][2]string{
				{"Name", u.Name},
				{"Username", u.Username},
				{"Email", u.Email},
				{"Phone", u.Phone},
				{"Website", u.Website},
				{"Company", u.Company.Name},
				{"City", u.Address.City},
			}
		},
		fill: fillUser,
	}
}

func newPostsScreen(d pages.Deps) screen {
	return &recordScreen[models.Post]{
		ctrl:    pages.NewPosts(d),
		columns: []any{"ID", "Title & Content", "Author", "User ID"},
		row: func(c *pages.Controller[models.Post], p models.Post) []any {
			return []any{p.ID, p.Title, c.OwnerName(p.UserID), p.UserID}
		},
		detail: func(c *pages.Controller[models.Post], p models.Post) [][2]string {
			return [][2]string{
				{"Title", p.Title},
				{"Content", p.Body},
				{"Author", c.OwnerName(p.UserID)},
			}
		},
		fill: fillPost,
	}
}

func newAlbumsScreen(d pages.Deps) screen {
	return &recordScreen[models.Album]{
		ctrl:    pages.NewAlbums(d),
		columns: []any{"ID", "Title", "Owner"},
		row: func(c *pages.Controller[models.Album], a models.Album) []any {
			return []any{a.ID, a.Title, c.OwnerName(a.UserID)}
		},
		detail: func(c *pages.Controller[models.Album], a models.Album) [][2]string {
			return [][2]string{
				{"Title", a.Title},
				{"Owner", c.OwnerName(a.UserID)},
			}
		},
		fill: fillAlbum,
	}
}

func newTodosScreen(d pages.Deps) screen {
	todos := pages.NewTodos(d)
	return &recordScreen[models.Todo]{
		ctrl:    todos.Controller,
		columns: []any{"ID", "Title", "Assigned To", "Status"},
		row: func(c *pages.Controller[models.Todo], t models.Todo) []any {
			return []any{t.ID, t.Title, c.OwnerName(t.UserID), t.StatusLabel()}
		},
		detail: func(c *pages.Controller[models.Todo], t models.Todo) [][2]string {
			return [][2]string{
				{"Title", t.Title},
				{"Assigned To", c.OwnerName(t.UserID)},
				{"Status", t.StatusLabel()},
			}
		},
		fill: fillTodo,
		toggle: func(ctx context.Context, id int) error {
			_, err := todos.Toggle(ctx, id)
			return err
		},
	}
}

// dashboardScreen shows the counters only; it has no records.
type dashboardScreen struct {
	dash *pages.Dashboard
}

func newDashboardScreen(d pages.Deps) screen {
	return &dashboardScreen{dash: pages.NewDashboardPage(d)}
}

func (s *dashboardScreen) Load(ctx context.Context) error {
	return s.dash.Load(ctx)
}

func (s *dashboardScreen) Render(w io.Writer, _ string) {
	fmt.Fprintln(w, "Dashboard")
	if msg := s.dash.Error(); msg != "" {
		fmt.Fprintf(w, "Error: %s\n", msg)
		return
	}

	st := s.dash.Stats()
	t := newTable()
	t.AddRow("Total Users", st.Users)
	t.AddRow("Total Posts", st.Posts)
	t.AddRow("Total Albums", st.Albums)
	t.AddRow("Todos", fmt.Sprintf("%d/%d", st.CompletedTodos, st.Todos))
	t.AddRow("Completion rate", fmt.Sprintf("%d%%", st.CompletionRate()))
	fmt.Fprintln(w, t)
	fmt.Fprintf(w, "%d out of %d todos completed\n", st.CompletedTodos, st.Todos)
}

func (s *dashboardScreen) Show(io.Writer, int) error {
	return local(fmt.Errorf("show: %w", errUnsupported))
}

func (s *dashboardScreen) New(context.Context, *form) error {
	return local(fmt.Errorf("new: %w", errUnsupported))
}

func (s *dashboardScreen) Edit(context.Context, *form, int) error {
	return local(fmt.Errorf("edit: %w", errUnsupported))
}

func (s *dashboardScreen) Delete(context.Context, int) error {
	return local(fmt.Errorf("delete: %w", errUnsupported))
}

func (s *dashboardScreen) Toggle(context.Context, int) error {
	return local(fmt.Errorf("toggle: %w", errUnsupported))
}

// screenFactories mount a fresh page per navigation.
var screenFactories = map[viewstate.Item]func(pages.Deps) screen{
	viewstate.Dashboard: newDashboardScreen,
	viewstate.Users:     newUsersScreen,
	viewstate.Posts:     newPostsScreen,
	viewstate.Albums:    newAlbumsScreen,
	viewstate.Todos:     newTodosScreen,
}
