package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.etcd.io/bbolt"

	"github.com/avdeenkov/huddle/internal/client/storage"
	"github.com/avdeenkov/huddle/pkg/api"
)

var (
	keyToken = []byte("token")
	keyUser  = []byte("user")
)

// Compile-time check that Storage implements storage.SessionStorage
var _ storage.SessionStorage = (*Storage)(nil)

// Load reads both session slots. A corrupt user entry or an empty token
// entry is purged and treated as absent, not as a fatal error.
func (s *Storage) Load(ctx context.Context) (*storage.Session, error) {
	session := &storage.Session{}

	// Update, а не View: битые записи вычищаются прямо при загрузке
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if data := bucket.Get(keyToken); data != nil {
			if len(data) == 0 {
				// Пустой токен — ложное состояние, удаляем слот
				slog.Warn("empty token entry in session storage, purging")
				if err := bucket.Delete(keyToken); err != nil {
					return fmt.Errorf("failed to purge token entry: %w", err)
				}
			} else {
				session.Token = string(data)
			}
		}

		if data := bucket.Get(keyUser); data != nil {
			user := &api.User{}
			if err := json.Unmarshal(data, user); err != nil {
				// Битый JSON профиля — не фатально, чистим слот
				// и заставляем клиента перезапросить профиль
				slog.Warn("corrupt user entry in session storage, purging", "error", err)
				if err := bucket.Delete(keyUser); err != nil {
					return fmt.Errorf("failed to purge user entry: %w", err)
				}
			} else {
				session.User = user
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Save writes both slots in one transaction.
// An absent field deletes its slot instead of writing an empty value.
func (s *Storage) Save(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if session.Token == "" {
			if err := bucket.Delete(keyToken); err != nil {
				return fmt.Errorf("failed to delete token: %w", err)
			}
		} else {
			if err := bucket.Put(keyToken, []byte(session.Token)); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
		}

		if session.User == nil {
			if err := bucket.Delete(keyUser); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}
		} else {
			data, err := json.Marshal(session.User)
			if err != nil {
				return fmt.Errorf("failed to marshal user: %w", err)
			}
			if err := bucket.Put(keyUser, data); err != nil {
				return fmt.Errorf("failed to save user: %w", err)
			}
		}

		return nil
	})
}

// Delete removes both session slots (logout). Idempotent.
func (s *Storage) Delete(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete(keyToken); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		if err := bucket.Delete(keyUser); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		return nil
	})
}
