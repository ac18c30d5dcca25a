package cli

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/bod/internal/client/config"
	"github.com/dmitrijs2005/bod/internal/client/gateway"
	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/client/notify"
	"github.com/dmitrijs2005/bod/internal/client/pages"
	"github.com/dmitrijs2005/bod/internal/client/services"
	"github.com/dmitrijs2005/bod/internal/client/storage"
	"github.com/dmitrijs2005/bod/internal/client/store"
	"github.com/dmitrijs2005/bod/internal/client/viewstate"
	"github.com/dmitrijs2005/bod/internal/common"
	"github.com/dmitrijs2005/bod/internal/fakeapi"
	"github.com/dmitrijs2005/bod/internal/logging"
	"github.com/dmitrijs2005/bod/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

var dbSeq atomic.Int64

func memDSN(name string) string {
	return fmt.Sprintf("file:%s%d?mode=memory&cache=shared", name, dbSeq.Add(1))
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), memDSN("cli"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type testApp struct {
	*App
	out *bytes.Buffer
	rec *notify.Recorder
}

func newTestApp(t *testing.T, db *sql.DB, input string) *testApp {
	t.Helper()

	st, err := fakeapi.NewStore(fakeapi.Seed())
	require.NoError(t, err)
	srv := httptest.NewServer(fakeapi.NewRouter(st, logging.Discard()))
	t.Cleanup(srv.Close)

	gw, err := gateway.NewHTTPGateway(srv.URL, 2*time.Second, nil, nil)
	require.NoError(t, err)

	rec := notify.NewRecorder(time.Hour)
	out := &bytes.Buffer{}

	// piped input: passwords come from the same reader
	origTTY := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTTY })
	capturePrints(t)

	a := &App{
		logger:   logging.Discard(),
		session:  services.NewSessionService(db, services.SessionOptions{}),
		view:     viewstate.New(),
		recorder: rec,
		reader:   rdr(input),
		out:      out,
		deps: pages.Deps{
			Gateway:  gw,
			IDPolicy: store.MonotonicIDs{},
			Notifier: rec,
			Logger:   logging.Discard(),
		},
	}
	return &testApp{App: a, out: out, rec: rec}
}

func (ta *testApp) summaries() []string {
	var out []string
	for _, n := range ta.rec.All() {
		out = append(out, n.Summary+"/"+n.Detail)
	}
	return out
}

func (ta *testApp) login(t *testing.T) {
	t.Helper()
	require.NoError(t, ta.session.Restore(context.Background()))
	ta.reader = rdr("admin\nadmin123\n")
	require.NoError(t, ta.Login(context.Background()))
}

// ---- login screen ----

func TestLogin_RequiredFields(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "\n\n")
	require.NoError(t, ta.session.Restore(context.Background()))

	err := ta.Login(context.Background())
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.False(t, ta.isLoggedIn())

	assert.Contains(t, ta.out.String(), "Username is required")
	assert.Contains(t, ta.out.String(), "Password is required")
	n, ok := ta.rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.SeverityWarn, n.Severity)
	assert.Equal(t, "Validation Error/Please fill in all required fields", n.Summary+"/"+n.Detail)
}

func TestLogin_WrongPassword(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "admin\nwrong\n")
	require.NoError(t, ta.session.Restore(context.Background()))

	err := ta.Login(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, ta.isLoggedIn())
	assert.Equal(t, []string{"Login Failed/" + common.InvalidCredentialsMessage}, ta.summaries())
}

func TestLogin_Success(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "")
	ta.login(t)

	assert.True(t, ta.isLoggedIn())
	assert.Equal(t, "(admin dashboard)", ta.getStatus())
	assert.Equal(t, []string{"Welcome!/Logged in as Administrator"}, ta.summaries())
}

func TestLogin_ClearsPreviousError(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "admin\nwrong\nuser\nuser123\n")
	require.NoError(t, ta.session.Restore(context.Background()))

	require.Error(t, ta.Login(context.Background()))
	assert.Equal(t, common.InvalidCredentialsMessage, ta.session.State().Error)

	require.NoError(t, ta.Login(context.Background()))
	assert.Empty(t, ta.session.State().Error)
	assert.Equal(t, "John Doe", ta.user().Name)
}

// ---- run ----

func TestRun_FullSession(t *testing.T) {
	db := setupDB(t)
	input := strings.Join([]string{
		"admin", "admin123",
		"todos",
		"toggle 1",
		"new", "Buy milk", "1", "n",
		"show 201",
		"list milk",
		"logout",
		"exit",
	}, "\n") + "\n"
	ta := newTestApp(t, db, input)

	require.NoError(t, ta.Run(context.Background()))

	out := ta.out.String()
	assert.Contains(t, out, "Demo Accounts | Administrator: admin/admin123 | John Doe: user/user123")
	assert.Contains(t, out, "66/200")
	assert.Contains(t, out, "33%")
	assert.Contains(t, out, "Manage Todos")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "1 of 201 todos")
	assert.Contains(t, out, "Logged out")

	assert.Equal(t, []string{
		"Welcome!/Logged in as Administrator",
		"Success/Dashboard data loaded successfully",
		"Success/Todos loaded successfully",
		"Info/Todo marked as completed",
		"Success/Todo created successfully",
	}, ta.summaries())

	assert.False(t, ta.isLoggedIn())
}

func TestRun_RestoresStoredSession(t *testing.T) {
	db := setupDB(t)

	first := newTestApp(t, db, "")
	first.login(t)

	second := newTestApp(t, db, "whoami\nexit\n")
	require.NoError(t, second.Run(context.Background()))

	out := second.out.String()
	assert.NotContains(t, out, "Demo Accounts")
	assert.Contains(t, out, "Administrator (admin) <admin@bod.com> role=admin")
	assert.Equal(t, []string{"Success/Dashboard data loaded successfully"}, second.summaries())
}

func TestRun_InputEndsOnLoginScreen(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "admin\nwrong\n")

	require.NoError(t, ta.Run(context.Background()))
	assert.False(t, ta.isLoggedIn())
	assert.Equal(t, []string{"Login Failed/" + common.InvalidCredentialsMessage}, ta.summaries())
}

// ---- pages ----

func TestNavigate_MountsFreshPage(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "")
	ta.login(t)
	ctx := context.Background()

	require.NoError(t, ta.Navigate(ctx, viewstate.Posts))
	ta.reader = rdr("Hello\nWorld\n\n2\n")
	require.NoError(t, ta.New(ctx))
	ta.out.Reset()
	require.NoError(t, ta.Show(ctx, 101))
	assert.Contains(t, ta.out.String(), "World")
	assert.Contains(t, ta.out.String(), "Ervin Howell")

	// a new visit starts from the server data again
	require.NoError(t, ta.Navigate(ctx, viewstate.Posts))
	err := ta.Show(ctx, 101)
	require.ErrorIs(t, err, common.ErrorNotFound)
	var le *localError
	assert.True(t, errors.As(err, &le))
}

func TestNavigate_UnknownPage(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "")
	err := ta.Navigate(context.Background(), viewstate.Item("settings"))
	require.ErrorIs(t, err, common.ErrUnknownPage)
}

func TestCommands_NeedAPage(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "")
	ctx := context.Background()

	require.ErrorIs(t, ta.List(ctx, ""), errNoPage)
	require.ErrorIs(t, ta.Show(ctx, 1), errNoPage)
	require.ErrorIs(t, ta.Reload(ctx), errNoPage)
}

func TestDashboard_HasNoRecords(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "")
	ta.login(t)
	ctx := context.Background()

	require.NoError(t, ta.Navigate(ctx, viewstate.Dashboard))
	assert.ErrorIs(t, ta.New(ctx), errUnsupported)
	assert.ErrorIs(t, ta.Toggle(ctx, 1), errUnsupported)
	assert.ErrorIs(t, ta.Delete(ctx, 1), errUnsupported)
}

func TestEdit_KeepsUnchangedFields(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "")
	ta.login(t)
	ctx := context.Background()

	require.NoError(t, ta.Navigate(ctx, viewstate.Albums))
	ta.reader = rdr("Holidays\n\n")
	require.NoError(t, ta.Edit(ctx, 1))

	ta.out.Reset()
	require.NoError(t, ta.Show(ctx, 1))
	assert.Contains(t, ta.out.String(), "Holidays")
	assert.Contains(t, ta.out.String(), "Leanne Graham")
	n, _ := ta.rec.Last()
	assert.Equal(t, "Album updated successfully", n.Detail)
}

func TestNew_MissingFieldsAreNotStored(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "")
	ta.login(t)
	ctx := context.Background()

	require.NoError(t, ta.Navigate(ctx, viewstate.Users))
	ta.reader = rdr("Ann\n\n\n\n\n")
	err := ta.New(ctx)
	require.ErrorIs(t, err, common.ErrorValidation)

	n, _ := ta.rec.Last()
	assert.Equal(t, pages.ValidationSummary, n.Summary)

	require.ErrorIs(t, ta.Show(ctx, 11), common.ErrorNotFound)
	assert.Len(t, ta.screen.(*recordScreen[models.User]).ctrl.Items(), 10)
}

func TestMenu_TogglesAndClosesOnNavigate(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "")
	ta.login(t)
	ctx := context.Background()

	require.NoError(t, ta.Navigate(ctx, viewstate.Albums))
	ta.out.Reset()

	require.NoError(t, ta.Menu(ctx))
	assert.True(t, ta.view.State().MobileMenuOpen)
	assert.Contains(t, ta.out.String(), "* Albums")
	assert.Contains(t, ta.out.String(), "  Todos")

	require.NoError(t, ta.Navigate(ctx, viewstate.Todos))
	assert.False(t, ta.view.State().MobileMenuOpen)
}

func TestNotifications_ShowsActive(t *testing.T) {
	ta := newTestApp(t, setupDB(t), "")
	ta.login(t)

	ta.out.Reset()
	require.NoError(t, ta.Notifications(context.Background()))
	assert.Equal(t, "[success] Welcome!: Logged in as Administrator\n", ta.out.String())

	ta.rec.Reset()
	ta.out.Reset()
	require.NoError(t, ta.Notifications(context.Background()))
	assert.Equal(t, "No notifications\n", ta.out.String())
}

// ---- wiring ----

func TestNewApp_Wiring(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DBPath = memDSN("newapp")
	cfg.CRUDMode = config.CRUDModeRemote
	cfg.IDPolicy = config.IDPolicyLengthPlusOne
	cfg.MaxConcurrentRequests = 2

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close(context.Background()) })

	assert.True(t, a.deps.WriteThrough)
	assert.Equal(t, "length_plus_one", a.deps.IDPolicy.Name())
	assert.Equal(t, 2, a.deps.MaxConcurrent)
	assert.Equal(t, cfg.APIBaseURL, a.deps.Gateway.BaseURL())
	assert.Equal(t, models.StatusChecking, a.session.State().Status())
}

func TestNewApp_FailureShutsDownTelemetry(t *testing.T) {
	orig := setupTelemetry
	t.Cleanup(func() { setupTelemetry = orig })

	var calls int
	setupTelemetry = func(context.Context, string, string, bool) (telemetry.ShutdownFunc, error) {
		return func(context.Context) error {
			calls++
			return nil
		}, nil
	}

	cases := []struct {
		name  string
		setup func(c *config.Config)
	}{
		{"bad policy", func(c *config.Config) { c.IDPolicy = "random" }},
		{"bad base url", func(c *config.Config) { c.APIBaseURL = "://nope" }},
		{"bad db path", func(c *config.Config) { c.DBPath = "/nonexistent-dir/bod.db" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls = 0
			cfg := &config.Config{}
			cfg.LoadDefaults()
			cfg.DBPath = memDSN("newappfail")
			tc.setup(cfg)

			_, err := NewApp(context.Background(), cfg)
			require.Error(t, err)
			assert.Equal(t, 1, calls)
		})
	}
}
