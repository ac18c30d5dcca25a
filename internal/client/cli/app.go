package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/bod/internal/client/auth"
	"github.com/dmitrijs2005/bod/internal/client/config"
	"github.com/dmitrijs2005/bod/internal/client/gateway"
	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/client/notify"
	"github.com/dmitrijs2005/bod/internal/client/pages"
	"github.com/dmitrijs2005/bod/internal/client/services"
	"github.com/dmitrijs2005/bod/internal/client/storage"
	"github.com/dmitrijs2005/bod/internal/client/store"
	"github.com/dmitrijs2005/bod/internal/client/viewstate"
	"github.com/dmitrijs2005/bod/internal/logging"
	"github.com/dmitrijs2005/bod/internal/telemetry"
	"github.com/fatih/color"
)

var setupTelemetry = telemetry.Setup

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	shutdown telemetry.ShutdownFunc

	session  services.SessionService
	view     *viewstate.Store
	deps     pages.Deps
	recorder *notify.Recorder

	reader *bufio.Reader
	out    io.Writer

	screen screen
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	shutdown, err := setupTelemetry(ctx, "bod-cli", c.OTLPEndpoint, true)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	a := &App{config: c, logger: logger, shutdown: shutdown}
	fail := func(err error) (*App, error) {
		a.Close(ctx)
		return nil, err
	}

	db, err := storage.Open(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return fail(err)
	}
	a.db = db

	gw, err := gateway.NewHTTPGateway(c.APIBaseURL, c.RequestTimeout, nil, logger)
	if err != nil {
		return fail(err)
	}

	policy, err := store.PolicyByName(c.IDPolicy)
	if err != nil {
		return fail(err)
	}

	session := services.NewSessionService(db, services.SessionOptions{
		LoginDelay: c.LoginDelay,
		TTL:        c.SessionTTL,
		Codec:      auth.NewTokenCodec([]byte(c.TokenSecret)),
		Logger:     logger,
	})

	recorder := notify.NewRecorder(c.NotificationLife)
	colored := !color.NoColor
	notifier := notify.Multi{notify.NewConsole(os.Stdout, colored), recorder}

	a.session = session
	a.view = viewstate.New()
	a.recorder = recorder
	a.reader = bufio.NewReader(os.Stdin)
	a.out = os.Stdout
	a.deps = pages.Deps{
		Gateway:       gw,
		WriteThrough:  c.CRUDMode == config.CRUDModeRemote,
		IDPolicy:      policy,
		MaxConcurrent: c.MaxConcurrentRequests,
		Notifier:      notifier,
		Logger:        logger,
	}
	return a, nil
}

// Close releases the database and flushes traces.
func (a *App) Close(ctx context.Context) {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "closing database", "error", err)
		}
	}
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			a.logger.Warn(ctx, "telemetry shutdown", "error", err)
		}
	}
}

// Run restores the stored session, shows the login screen while nobody is
// logged in and then hands over to the REPL. It returns when the user exits
// or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close(ctx)

	fmt.Fprintln(a.out, "BOD Dashboard (type 'help' for commands)")

	if err := a.session.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "restore session", "error", err)
	}

	if !a.isLoggedIn() {
		if err := a.loginScreen(ctx); err != nil {
			return nil
		}
	}
	if err := a.Navigate(ctx, viewstate.Dashboard); err != nil {
		a.logger.Debug(ctx, "initial load", "error", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

func (a *App) user() *models.Profile {
	return a.session.State().User
}

func (a *App) getStatus() string {
	var parts []string
	if u := a.user(); u != nil {
		parts = append(parts, u.Username)
	}
	if item := a.view.State().ActiveItem; item != "" && a.isLoggedIn() {
		parts = append(parts, string(item))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}
