package pages

import (
	"context"

	"github.com/dmitrijs2005/bod/internal/client/fetch"
	"github.com/dmitrijs2005/bod/internal/client/gateway"
	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/client/notify"
	"github.com/dmitrijs2005/bod/internal/client/store"
	"github.com/dmitrijs2005/bod/internal/logging"
)

// Deps are what every page needs. Each constructor call mounts a fresh
// controller with its own orchestrator and empty store.
type Deps struct {
	Gateway       *gateway.HTTPGateway
	WriteThrough  bool
	IDPolicy      store.IDPolicy
	MaxConcurrent int
	Notifier      notify.Notifier
	Logger        logging.Logger
}

func newStore[T models.Record[T]](d Deps, remote store.Remote[T]) store.Store[T] {
	if d.WriteThrough {
		return store.NewWriteThrough[T](remote, d.IDPolicy)
	}
	return store.NewLocalOnly[T](d.IDPolicy)
}

func listAll[T any](col *gateway.Collection[T]) fetch.Op {
	return fetch.Call(func(ctx context.Context) (gateway.Response[[]T], error) {
		return col.List(ctx, nil)
	})
}

func options[T models.Record[T]](d Deps, noun, plural string, col *gateway.Collection[T], owned bool) Options[T] {
	opts := Options[T]{
		Noun:         noun,
		Plural:       plural,
		List:         listAll(col),
		Store:        newStore[T](d, col),
		Orchestrator: fetch.New(d.MaxConcurrent, d.Logger),
		Notifier:     d.Notifier,
		Logger:       d.Logger,
	}
	if owned {
		opts.Owners = listAll(d.Gateway.Users)
	}
	return opts
}

func NewUsers(d Deps) *Controller[models.User] {
	return NewController(options(d, "User", "Users", d.Gateway.Users, false))
}

func NewPosts(d Deps) *Controller[models.Post] {
	return NewController(options(d, "Post", "Posts", d.Gateway.Posts, true))
}

func NewAlbums(d Deps) *Controller[models.Album] {
	return NewController(options(d, "Album", "Albums", d.Gateway.Albums, true))
}

func NewTodos(d Deps) *TodoController {
	return &TodoController{Controller: NewController(options(d, "Todo", "Todos", d.Gateway.Todos, true))}
}

func NewDashboardPage(d Deps) *Dashboard {
	return NewDashboard(DashboardOptions{
		Users:        listAll(d.Gateway.Users),
		Posts:        listAll(d.Gateway.Posts),
		Albums:       listAll(d.Gateway.Albums),
		Todos:        listAll(d.Gateway.Todos),
		Orchestrator: fetch.New(d.MaxConcurrent, d.Logger),
		Notifier:     d.Notifier,
		Logger:       d.Logger,
	})
}
