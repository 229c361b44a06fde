// Package session владеет in-memory состоянием сессии клиента.
// Manager — единственная точка, через которую остальной код читает
// и мутирует сессию; durable хранилище только зеркалирует ее.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/avdeenkov/huddle/internal/client/storage"
	"github.com/avdeenkov/huddle/pkg/api"
)

// Manager composes the in-memory session with its durable mirror.
// Mutation is atomic: token and user are always set and cleared together,
// and every mutation is written through to storage before it becomes
// visible in memory.
type Manager struct {
	store storage.SessionStorage

	mu       sync.RWMutex
	token    string
	user     *api.User
	clientID string
	gen      int64
}

// New создает Manager и ровно один раз загружает сессию из хранилища
func New(ctx context.Context, store storage.SessionStorage) (*Manager, error) {
	loaded, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	clientID, err := store.ClientID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get client id: %w", err)
	}

	return &Manager{
		store:    store,
		token:    loaded.Token,
		user:     loaded.User,
		clientID: clientID,
	}, nil
}

// Token returns the current bearer token, "" when logged out
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User returns the cached profile snapshot, nil when absent.
// A nil user with a non-empty token means the profile must be re-fetched.
func (m *Manager) User() *api.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// ClientID returns the stable per-install identifier
func (m *Manager) ClientID() string {
	return m.clientID
}

// Generation returns the current session generation. The counter is bumped
// by every mutation; a response obtained under an older generation must be
// discarded by the caller instead of repopulating a changed session.
func (m *Manager) Generation() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gen
}

// Current reports whether gen is still the live session generation
func (m *Manager) Current(gen int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gen == gen
}

// SetSession атомарно заменяет токен и профиль.
// Сначала write-through в хранилище, затем память; при ошибке записи
// состояние в памяти не меняется.
func (m *Manager) SetSession(ctx context.Context, token string, user *api.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(ctx, &storage.Session{Token: token, User: user}); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	m.token = token
	if user == nil {
		m.user = nil
	} else {
		u := *user
		m.user = &u
	}
	m.gen++

	return nil
}

// Clear атомарно сбрасывает сессию (logout). Сетевых вызовов нет.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	m.token = ""
	m.user = nil
	m.gen++

	return nil
}
