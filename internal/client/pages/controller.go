// Package pages holds the controllers behind the console's screens. A
// controller fetches its data through a fetch.Orchestrator, keeps it in a
// store.Store and reports every outcome through a notify.Notifier.
package pages

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/bod/internal/client/fetch"
	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/client/notify"
	"github.com/dmitrijs2005/bod/internal/client/store"
	"github.com/dmitrijs2005/bod/internal/logging"
)

const (
	summarySuccess = "Success"
	summaryError   = "Error"
	summaryInfo    = "Info"

	// ValidationSummary and ValidationDetail are shown when required
	// fields are missing.
	ValidationSummary = "Validation Error"
	ValidationDetail  = "Please fill in all required fields"

	UnknownOwner = "Unknown"
)

// Options wire a Controller.
type Options[T models.Record[T]] struct {
	// Noun and Plural name the records in messages, e.g. "Post", "Posts".
	Noun   string
	Plural string
	// List fetches the collection.
	List fetch.Op
	// Owners fetches the users that own the records; nil when the records
	// are not owned.
	Owners fetch.Op

	Store        store.Store[T]
	Orchestrator *fetch.Orchestrator
	Notifier     notify.Notifier
	Logger       logging.Logger
}

// Controller is the shared logic of the Users, Posts, Albums and Todos
// screens.
type Controller[T models.Record[T]] struct {
	noun   string
	plural string
	list   fetch.Op
	owners fetch.Op

	store  store.Store[T]
	orch   *fetch.Orchestrator
	notify notify.Notifier
	log    logging.Logger

	mu    sync.RWMutex
	users []models.User
}

func NewController[T models.Record[T]](opts Options[T]) *Controller[T] {
	c := &Controller[T]{
		noun:   opts.Noun,
		plural: opts.Plural,
		list:   opts.List,
		owners: opts.Owners,
		store:  opts.Store,
		orch:   opts.Orchestrator,
		notify: opts.Notifier,
		log:    opts.Logger,
	}
	if c.store == nil {
		c.store = store.NewLocalOnly[T](nil)
	}
	if c.orch == nil {
		c.orch = fetch.New(0, nil)
	}
	if c.notify == nil {
		c.notify = notify.Discard{}
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	c.log = c.log.With("page", strings.ToLower(c.plural))
	return c
}

func (c *Controller[T]) Noun() string   { return c.noun }
func (c *Controller[T]) Plural() string { return c.plural }
func (c *Controller[T]) Busy() bool     { return c.orch.Busy() }
func (c *Controller[T]) Error() string  { return c.orch.Error() }
func (c *Controller[T]) Mode() string   { return c.store.Mode() }

// Items returns the current records.
func (c *Controller[T]) Items() []T { return c.store.Items() }

// Get returns the record with id.
func (c *Controller[T]) Get(id int) (T, bool) { return c.store.Get(id) }

// Load fetches the collection, and the owners when the records have any.
// On failure the current records are kept.
func (c *Controller[T]) Load(ctx context.Context) error {
	items, users, err := c.retrieve(ctx)
	if err != nil {
		c.log.Warn(ctx, "load failed", "error", err)
		notify.Error(ctx, c.notify, summaryError, "Failed to load "+strings.ToLower(c.plural))
		return err
	}

	c.store.Replace(items)
	c.mu.Lock()
	c.users = users
	c.mu.Unlock()

	c.log.Debug(ctx, "loaded", "count", len(items))
	notify.Success(ctx, c.notify, summarySuccess, c.plural+" loaded successfully")
	return nil
}

func (c *Controller[T]) retrieve(ctx context.Context) ([]T, []models.User, error) {
	if c.owners == nil {
		items, err := fetch.One[[]T](ctx, c.orch, c.list)
		if err != nil {
			return nil, nil, err
		}
		users, _ := any(items).([]models.User)
		return items, users, nil
	}

	values, err := c.orch.RunMany(ctx, c.list, c.owners)
	if err != nil {
		return nil, nil, err
	}
	items, err := fetch.Nth[[]T](values, 0)
	if err != nil {
		return nil, nil, err
	}
	users, err := fetch.Nth[[]models.User](values, 1)
	if err != nil {
		return nil, nil, err
	}
	return items, users, nil
}

// Create validates rec and adds it. Missing required fields are reported
// without any store or network work.
func (c *Controller[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := c.validate(ctx, rec); err != nil {
		return zero, err
	}

	created, err := c.store.Create(ctx, rec)
	if err != nil {
		c.fail(ctx, err, "create")
		return zero, err
	}
	notify.Success(ctx, c.notify, summarySuccess, c.noun+" created successfully")
	return created, nil
}

// Update validates rec and replaces the record with its id.
func (c *Controller[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := c.validate(ctx, rec); err != nil {
		return zero, err
	}

	updated, err := c.store.Update(ctx, rec)
	if err != nil {
		c.fail(ctx, err, "update")
		return zero, err
	}
	notify.Success(ctx, c.notify, summarySuccess, c.noun+" updated successfully")
	return updated, nil
}

// Delete removes the record with id.
func (c *Controller[T]) Delete(ctx context.Context, id int) error {
	if err := c.store.Delete(ctx, id); err != nil {
		c.fail(ctx, err, "delete")
		return err
	}
	notify.Success(ctx, c.notify, summarySuccess, c.noun+" deleted successfully")
	return nil
}

func (c *Controller[T]) validate(ctx context.Context, rec T) error {
	if err := rec.Validate(); err != nil {
		notify.Warn(ctx, c.notify, ValidationSummary, ValidationDetail)
		return err
	}
	return nil
}

func (c *Controller[T]) fail(ctx context.Context, err error, action string) {
	c.log.Warn(ctx, action+" failed", "error", err)
	fallback := fmt.Sprintf("Failed to %s %s", action, strings.ToLower(c.noun))
	notify.Error(ctx, c.notify, summaryError, fetch.Message(err, fallback))
}

// Search returns the records whose searchable text contains term, ignoring
// case. An empty term matches everything.
func (c *Controller[T]) Search(term string) []T {
	items := c.store.Items()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	var out []T
	for _, it := range items {
		for _, s := range it.SearchText() {
			if strings.Contains(strings.ToLower(s), term) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Users returns the owners loaded with the records.
func (c *Controller[T]) Users() []models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.User(nil), c.users...)
}

// OwnerName returns the name of the user with userID, or "Unknown".
func (c *Controller[T]) OwnerName(userID int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.users {
		if u.ID == userID {
			return u.Name
		}
	}
	return UnknownOwner
}
