// Package session holds the single source of truth for "am I logged in,
// and with which credentials". Tokens survive restarts in the local SQLite
// database; the in-memory snapshot is what the request gateway reads on
// every call.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/maxh33/twitterclone-cli/internal/client/models"
	"github.com/maxh33/twitterclone-cli/internal/client/repositories/metadata"
	"github.com/maxh33/twitterclone-cli/internal/dbx"
)

// Storage keys. External modification of these rows is trusted verbatim,
// mirroring how the original trusted browser storage.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyIsDemoUser   = "is_demo_user"
	keyUser         = "user"
)

// Store is the injectable session store shared by the gateway and the auth
// service. All persistent writes happen in a single transaction, so a crash
// or error never leaves tokens half-updated, and the in-memory snapshot is
// only replaced after a successful commit.
//
// Invariant: IsAuthenticated() is true iff a non-empty access token is set.
type Store struct {
	db *sql.DB

	mu      sync.RWMutex
	access  string
	refresh string
	demo    bool
	user    *models.User
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// Restore loads persisted tokens into memory on process start. No network
// call is made; token validity is discovered lazily on the first
// authenticated request. Returns true when a session was restored.
func (s *Store) Restore(ctx context.Context) (bool, error) {
	all, err := s.repo(s.db).List(ctx)
	if err != nil {
		return false, err
	}

	access := string(all[keyAccessToken])
	if access == "" {
		return false, nil
	}

	var user *models.User
	if raw := all[keyUser]; len(raw) > 0 {
		var u models.User
		if err := json.Unmarshal(raw, &u); err == nil {
			user = &u
		}
	}

	s.mu.Lock()
	s.access = access
	s.refresh = string(all[keyRefreshToken])
	s.demo = string(all[keyIsDemoUser]) == "true"
	s.user = user
	s.mu.Unlock()

	return true, nil
}

// Set persists the token pair, the demo flag and the user profile in one
// transaction, then replaces the in-memory snapshot.
func (s *Store) Set(ctx context.Context, tokens models.TokenPair, user *models.User, demo bool) error {
	demoVal := "false"
	if demo {
		demoVal = "true"
	}

	var rawUser []byte
	if user != nil {
		var err error
		rawUser, err = json.Marshal(user)
		if err != nil {
			return err
		}
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(tokens.Access)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyRefreshToken, []byte(tokens.Refresh)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyIsDemoUser, []byte(demoVal)); err != nil {
			return err
		}
		if user != nil {
			return repo.Set(ctx, keyUser, rawUser)
		}
		return repo.Delete(ctx, keyUser)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.access = tokens.Access
	s.refresh = tokens.Refresh
	s.demo = demo
	s.user = user
	s.mu.Unlock()

	return nil
}

// SetTokens updates the stored credentials after a refresh. An empty refresh
// value keeps the current refresh token (the backend rotates it only
// sometimes).
func (s *Store) SetTokens(ctx context.Context, access, refresh string) error {
	if refresh == "" {
		refresh = s.RefreshToken()
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(access)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRefreshToken, []byte(refresh))
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.access = access
	s.refresh = refresh
	s.mu.Unlock()

	return nil
}

// Clear removes all persisted auth artifacts and resets the in-memory
// state. The in-memory reset happens first and unconditionally: local
// logout is never blocked on storage (or network) failures.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.access = ""
	s.refresh = ""
	s.demo = false
	s.user = nil
	s.mu.Unlock()

	return s.repo(s.db).Clear(ctx)
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// IsAuthenticated reports whether a non-empty access token is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access != ""
}

func (s *Store) IsDemoUser() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.demo
}

// User returns the cached profile, or nil when none was stored.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}
