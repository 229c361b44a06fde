// Package identity отвечает на вопрос "от чьего имени выполняется запрос".
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/avdeenkov/huddle/internal/client/session"
	"github.com/avdeenkov/huddle/internal/client/token"
)

// ErrNotAuthenticated означает, что идентичность потребовалась,
// а пригодной сессии нет
var ErrNotAuthenticated = errors.New("not authenticated")

// Resolver derives the current user id from the session.
// The cached profile is the preferred source; decoding the token is the
// fallback. The result is never cached: the session can change between
// calls, so API request builders must resolve fresh before every request.
type Resolver struct {
	sessions *session.Manager
	codec    *token.Codec
}

// New создает Resolver
func New(sessions *session.Manager, codec *token.Codec) *Resolver {
	return &Resolver{
		sessions: sessions,
		codec:    codec,
	}
}

// CurrentUserID возвращает id текущего пользователя.
// Приоритет: кешированный профиль, затем identifier claim токена.
// Истекший или нечитаемый токен уничтожает сессию: хранить его дальше
// бессмысленно, каждый следующий вызов падал бы так же.
func (r *Resolver) CurrentUserID(ctx context.Context) (int64, error) {
	if user := r.sessions.User(); user != nil {
		return user.ID, nil
	}

	raw := r.sessions.Token()
	if raw == "" {
		return 0, ErrNotAuthenticated
	}

	payload, err := r.codec.Decode(raw)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) || errors.Is(err, token.ErrMalformedToken) {
			if clearErr := r.sessions.Clear(ctx); clearErr != nil {
				slog.Warn("failed to clear dead session", "error", clearErr)
			}
		}
		return 0, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}

	id, err := parseUserID(payload.Identifier())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}

	return id, nil
}

// parseUserID приводит identifier claim к числовому id.
// Сервер кодирует id вида "u7", поэтому ведущий нечисловой
// префикс отбрасывается.
func parseUserID(identifier string) (int64, error) {
	start := 0
	for start < len(identifier) && (identifier[start] < '0' || identifier[start] > '9') {
		start++
	}

	end := start
	for end < len(identifier) && identifier[end] >= '0' && identifier[end] <= '9' {
		end++
	}

	if start == end {
		return 0, fmt.Errorf("no numeric user id in claim %q", identifier)
	}

	id, err := strconv.ParseInt(identifier[start:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse user id from claim %q: %w", identifier, err)
	}

	return id, nil
}
