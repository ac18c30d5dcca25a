package pages

import (
	"context"
	"math"
	"sync"

	"github.com/dmitrijs2005/bod/internal/client/fetch"
	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/client/notify"
	"github.com/dmitrijs2005/bod/internal/logging"
)

// Stats are the dashboard counters.
type Stats struct {
	Users          int
	Posts          int
	Albums         int
	Todos          int
	CompletedTodos int
}

// CompletionRate is the share of completed todos in whole percent,
// rounded half away from zero. It is 0 when there are no todos.
func (s Stats) CompletionRate() int {
	if s.Todos == 0 {
		return 0
	}
	return int(math.Round(float64(s.CompletedTodos) / float64(s.Todos) * 100))
}

// Dashboard loads every collection to compute Stats.
type Dashboard struct {
	users, posts, albums, todos fetch.Op

	orch   *fetch.Orchestrator
	notify notify.Notifier
	log    logging.Logger

	mu    sync.RWMutex
	stats Stats
}

// DashboardOptions wire a Dashboard.
type DashboardOptions struct {
	Users, Posts, Albums, Todos fetch.Op

	Orchestrator *fetch.Orchestrator
	Notifier     notify.Notifier
	Logger       logging.Logger
}

func NewDashboard(opts DashboardOptions) *Dashboard {
	d := &Dashboard{
		users:  opts.Users,
		posts:  opts.Posts,
		albums: opts.Albums,
		todos:  opts.Todos,
		orch:   opts.Orchestrator,
		notify: opts.Notifier,
		log:    opts.Logger,
	}
	if d.orch == nil {
		d.orch = fetch.New(0, nil)
	}
	if d.notify == nil {
		d.notify = notify.Discard{}
	}
	if d.log == nil {
		d.log = logging.Discard()
	}
	return d
}

func (d *Dashboard) Busy() bool    { return d.orch.Busy() }
func (d *Dashboard) Error() string { return d.orch.Error() }

// Stats returns the last computed counters.
func (d *Dashboard) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats
}

// Load fetches users, posts, albums and todos together. On failure the
// previous counters are kept.
func (d *Dashboard) Load(ctx context.Context) error {
	values, err := d.orch.RunMany(ctx, d.users, d.posts, d.albums, d.todos)
	if err == nil {
		err = d.compute(values)
	}
	if err != nil {
		d.log.Warn(ctx, "dashboard load failed", "error", err)
		notify.Error(ctx, d.notify, summaryError, "Failed to load dashboard data")
		return err
	}

	notify.Success(ctx, d.notify, summarySuccess, "Dashboard data loaded successfully")
	return nil
}

func (d *Dashboard) compute(values []any) error {
	users, err := fetch.Nth[[]models.User](values, 0)
	if err != nil {
		return err
	}
	posts, err := fetch.Nth[[]models.Post](values, 1)
	if err != nil {
		return err
	}
	albums, err := fetch.Nth[[]models.Album](values, 2)
	if err != nil {
		return err
	}
	todos, err := fetch.Nth[[]models.Todo](values, 3)
	if err != nil {
		return err
	}

	s := Stats{Users: len(users), Posts: len(posts), Albums: len(albums), Todos: len(todos)}
	for _, t := range todos {
		if t.Completed {
			s.CompletedTodos++
		}
	}

	d.mu.Lock()
	d.stats = s
	d.mu.Unlock()
	return nil
}
