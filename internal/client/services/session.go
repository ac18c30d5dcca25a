// Package services contains the console's application services.
// This file defines the mock session manager: local credential check,
// token issuing, and persistence of the session between runs.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/bod/internal/client/auth"
	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bod/internal/common"
	"github.com/dmitrijs2005/bod/internal/dbx"
	"github.com/dmitrijs2005/bod/internal/logging"
)

const (
	DefaultLoginDelay = time.Second
	DefaultSessionTTL = 24 * time.Hour
)

// SessionService owns the authentication state of the console.
//
// Contract:
//   - Login: check credentials against the built-in accounts, issue a token
//     and persist it together with the profile.
//   - Logout: forget the persisted session. Safe to call repeatedly.
//   - Restore: rebuild the session from storage once at startup.
//   - ClearError: drop the last login error.
//   - State: copy of the current session.
type SessionService interface {
	Login(ctx context.Context, username, password string) (*models.Profile, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	ClearError()
	State() models.Session
	Accounts() []models.Profile
	DemoCredentials(username string) (string, bool)
}

// SessionOptions tune the session service. Zero values select defaults.
type SessionOptions struct {
	LoginDelay time.Duration
	TTL        time.Duration
	Codec      *auth.TokenCodec
	Now        func() time.Time
	Logger     logging.Logger
}

type sessionService struct {
	db       *sql.DB
	accounts []models.Account
	delay    time.Duration
	ttl      time.Duration
	codec    *auth.TokenCodec
	now      func() time.Time
	log      logging.Logger

	mu    sync.RWMutex
	state models.Session
}

// NewSessionService constructs a SessionService persisting into db. The
// session starts in the checking state until Restore is called.
func NewSessionService(db *sql.DB, opts SessionOptions) SessionService {
	s := &sessionService{
		db:       db,
		accounts: models.BuiltinAccounts(),
		delay:    opts.LoginDelay,
		ttl:      opts.TTL,
		codec:    opts.Codec,
		now:      opts.Now,
		log:      opts.Logger,
		state:    models.NewSession(),
	}
	if s.delay < 0 {
		s.delay = 0
	}
	if s.ttl <= 0 {
		s.ttl = DefaultSessionTTL
	}
	if s.codec == nil {
		s.codec = auth.NewTokenCodec(nil)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	return s
}

func (s *sessionService) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *sessionService) set(st models.Session) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *sessionService) State() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

func (s *sessionService) ClearError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

func (s *sessionService) Accounts() []models.Profile {
	out := make([]models.Profile, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a.Profile())
	}
	return out
}

func (s *sessionService) DemoCredentials(username string) (string, bool) {
	for _, a := range s.accounts {
		if a.Username == username {
			return a.Password, true
		}
	}
	return "", false
}

func (s *sessionService) match(username, password string) (models.Account, bool) {
	for _, a := range s.accounts {
		if a.Username == username && a.Password == password {
			return a, true
		}
	}
	return models.Account{}, false
}

func (s *sessionService) wait(ctx context.Context) error {
	if s.delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Login checks the credentials after the configured delay. A mismatch
// returns common.ErrInvalidCredentials and leaves its message in State().Error.
// An existing session is forgotten first, so a failed attempt never leaves a
// stored token behind an anonymous state.
func (s *sessionService) Login(ctx context.Context, username, password string) (*models.Profile, error) {
	if s.State().IsAuthenticated {
		if err := s.forget(ctx); err != nil {
			return nil, fmt.Errorf("login error: %w", err)
		}
	}
	s.set(models.Session{Loading: true})

	if err := s.wait(ctx); err != nil {
		s.set(models.Session{})
		return nil, err
	}

	account, ok := s.match(username, password)
	if !ok {
		s.log.Info(ctx, "login rejected", "username", username)
		s.set(models.Session{Error: common.InvalidCredentialsMessage})
		return nil, common.ErrInvalidCredentials
	}

	profile := account.Profile()
	now := s.now()
	token, err := s.codec.Sign(profile, now, now.Add(s.ttl))
	if err != nil {
		s.set(models.Session{Error: err.Error()})
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := s.save(ctx, token, profile); err != nil {
		s.log.Error(ctx, "session saving failed", "error", err)
		s.set(models.Session{Error: err.Error()})
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	s.set(models.Session{IsAuthenticated: true, User: &profile, Token: token})
	s.log.Info(ctx, "logged in", "username", profile.Username, "role", profile.Role)

	out := profile
	return &out, nil
}

// save persists the token and the profile in a single transaction.
func (s *sessionService) save(ctx context.Context, token string, profile models.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, common.AuthTokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserDataKey, data)
	})
}

// forget drops everything the session stored.
func (s *sessionService) forget(ctx context.Context) error {
	return s.repo(s.db).Clear(ctx)
}

// Logout removes the persisted session and resets the state. The in-memory
// state is reset even when storage fails.
func (s *sessionService) Logout(ctx context.Context) error {
	s.set(models.Session{})
	if err := s.forget(ctx); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	return nil
}

// Restore rebuilds the session from storage. Unusable stored data is
// discarded without surfacing an error to the operator; only storage
// failures are returned.
func (s *sessionService) Restore(ctx context.Context) error {
	repo := s.repo(s.db)

	token, err := repo.Get(ctx, common.AuthTokenKey)
	if err != nil {
		s.set(models.Session{})
		return fmt.Errorf("restore error: %w", err)
	}
	data, err := repo.Get(ctx, common.UserDataKey)
	if err != nil {
		s.set(models.Session{})
		return fmt.Errorf("restore error: %w", err)
	}

	if token == nil || data == nil {
		s.set(models.Session{})
		return nil
	}

	profile, err := s.check(string(token), data)
	if err != nil {
		s.log.Info(ctx, "stored session discarded", "reason", err)
		s.set(models.Session{})
		if fErr := s.forget(ctx); fErr != nil {
			return fmt.Errorf("restore error: %w", fErr)
		}
		return nil
	}

	s.set(models.Session{IsAuthenticated: true, User: &profile, Token: string(token)})
	s.log.Info(ctx, "session restored", "username", profile.Username)
	return nil
}

var errBadProfile = errors.New("stored profile is unreadable")

func (s *sessionService) check(token string, data []byte) (models.Profile, error) {
	if _, err := s.codec.Verify(token, s.now()); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", errBadProfile, err)
	}
	if profile.Username == "" {
		return models.Profile{}, errBadProfile
	}
	return profile, nil
}
