package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/placeprep/ppclient/internal/client/api"
	"github.com/placeprep/ppclient/internal/client/models"
	"github.com/placeprep/ppclient/internal/client/repositories/tokens"
	"github.com/placeprep/ppclient/internal/logging"
)

// Store owns the process-wide session: the bearer token, the authenticated
// user, and the loading flag covering the initial identity check.
//
// The store is the sole writer of the API client's default credential. Token
// mutation, header mutation and persistence happen under one lock, so no
// request can be issued between them with inconsistent credentials.
type Store struct {
	client api.Client
	tokens tokens.Repository
	log    logging.Logger

	mu      sync.RWMutex
	token   string
	user    *models.User
	loading bool
}

// NewStore builds a session store. The store starts in the loading state
// until Restore has resolved.
func NewStore(client api.Client, repo tokens.Repository, log logging.Logger) *Store {
	return &Store{client: client, tokens: repo, log: log, loading: true}
}

// Restore hydrates the session from the persisted token, if any, and
// validates it against the backend's identity check. An invalid or rejected
// token is silently discarded: the persisted entry, the in-memory token and
// the client credential are all cleared and the store ends up
// unauthenticated. Loading becomes false exactly once, after the check
// resolves or immediately when no token was stored.
func (s *Store) Restore(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, err := s.tokens.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted token", "err", err)
		return
	}
	if token == "" {
		return
	}

	s.mu.Lock()
	s.token = token
	s.client.SetToken(token)
	s.mu.Unlock()

	user, err := s.client.Me(ctx)
	if err != nil || user == nil {
		if err != nil {
			s.log.Info(ctx, "stored token rejected, downgrading to unauthenticated", "err", err)
		}
		s.clear(ctx)
		return
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "user", user.Email)
}

// Login exchanges credentials for a token. On success the token is
// persisted, installed on the client, and the user is set, all before Login
// returns. On failure no session state changes; the returned error carries
// the backend message when one was supplied.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.adopt(ctx, token, user)
	return nil
}

// Register creates an account; the contract matches Login.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) error {
	token, user, err := s.client.Register(ctx, req)
	if err != nil {
		return err
	}
	s.adopt(ctx, token, user)
	return nil
}

// adopt installs a freshly issued token and user as the current session.
func (s *Store) adopt(ctx context.Context, token string, user *models.User) {
	if err := s.tokens.Save(ctx, token); err != nil {
		// The session stays valid for this process; only the restart
		// convenience is lost.
		s.log.Warn(ctx, "failed to persist token", "err", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.client.SetToken(token)
	s.mu.Unlock()
}

// Logout drops the session: persisted token, in-memory token, user, and the
// client credential. It never fails; a persistence error only costs the
// cleanup of the stored entry and is logged.
func (s *Store) Logout(ctx context.Context) {
	s.clear(ctx)
	s.log.Info(ctx, "logged out")
}

func (s *Store) clear(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear persisted token", "err", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.client.SetToken("")
	s.mu.Unlock()
}

// UpdateProfile sends a profile patch. On success the user is replaced with
// the server's representation; on failure the current user stays untouched.
func (s *Store) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) error {
	user, err := s.client.UpdateProfile(ctx, patch)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// IsAuthenticated reports whether a validated user is present. Route guards
// must consult this, never raw token presence: a token may exist but still be
// unvalidated or rejected.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Loading reports whether the initial identity check is still in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// User returns the authenticated user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// TokenExpiry reports when the current token expires, when the token is a
// JWT carrying an exp claim. The claim is read without signature
// verification; it is display-only and never used for authorization.
func (s *Store) TokenExpiry() (time.Time, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
