package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdeenkov/huddle/internal/client/api"
	"github.com/avdeenkov/huddle/internal/client/identity"
	"github.com/avdeenkov/huddle/internal/client/session"
	"github.com/avdeenkov/huddle/internal/client/token"
	"github.com/avdeenkov/huddle/internal/validation"
	pkgapi "github.com/avdeenkov/huddle/pkg/api"
)

// ErrStaleSession означает, что сессия сменилась, пока запрос был в полете.
// Такой ответ отбрасывается и не перезаписывает новую сессию.
var ErrStaleSession = errors.New("session changed during request")

// Service предоставляет функции авторизации: login, register, logout
// и доступ к профилю текущего пользователя
type Service struct {
	apiClient *api.Client
	sessions  *session.Manager
	resolver  *identity.Resolver
	codec     *token.Codec
}

// NewService создает новый сервис авторизации
func NewService(apiClient *api.Client, sessions *session.Manager, resolver *identity.Resolver, codec *token.Codec) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
		resolver:  resolver,
		codec:     codec,
	}
}

// Login выполняет аутентификацию пользователя.
// При успехе токен и профиль сохраняются в сессию одной атомарной операцией.
func (s *Service) Login(ctx context.Context, login, password string) (*pkgapi.User, error) {
	if err := validation.ValidateLogin(login); err != nil {
		return nil, fmt.Errorf("invalid login: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Login:    login,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	user := resp.User
	if err := s.sessions.SetSession(ctx, resp.AccessToken, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Register регистрирует нового пользователя.
// Ответ сервера идентичен login, поэтому сессия создается сразу.
func (s *Service) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.User, error) {
	if err := validation.ValidateLogin(req.Login); err != nil {
		return nil, fmt.Errorf("invalid login: %w", err)
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	user := resp.User
	if err := s.sessions.SetSession(ctx, resp.AccessToken, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout сбрасывает сессию. Сетевого вызова нет: bearer токен
// отзывается только истечением срока, серверу сообщать нечего.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// CurrentUser возвращает профиль текущего пользователя.
// Кешированный снимок отдается как есть; если в сессии только токен
// (например, user-слот был битым при загрузке), профиль запрашивается
// у сервера и кешируется.
func (s *Service) CurrentUser(ctx context.Context) (*pkgapi.User, error) {
	if user := s.sessions.User(); user != nil {
		return user, nil
	}

	userID, err := s.resolver.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	// Поколение фиксируется до сетевого вызова: logout в полете
	// делает ответ устаревшим
	gen := s.sessions.Generation()
	tok := s.sessions.Token()

	user, err := s.apiClient.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !s.sessions.Current(gen) {
		return nil, ErrStaleSession
	}

	if err := s.sessions.SetSession(ctx, tok, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Status представляет состояние аутентификации клиента
type Status struct {
	Authenticated bool
	Login         string    // логин из кешированного профиля, если он есть
	Subject       string    // subject из токена
	ExpiresAt     time.Time // нулевое время = токен без срока действия
	Expired       bool
}

// Status сообщает, есть ли пригодная сессия и когда истекает токен.
// Истекший или нечитаемый токен уничтожает сессию, включая запись в
// хранилище: следующий запуск клиента стартует разлогиненным.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	raw := s.sessions.Token()
	if raw == "" {
		return &Status{}, nil
	}

	st := &Status{Authenticated: true}
	if user := s.sessions.User(); user != nil {
		st.Login = user.Login
	}

	payload, err := s.codec.Decode(raw)
	switch {
	case errors.Is(err, token.ErrTokenExpired):
		st.Authenticated = false
		st.Expired = true
		if err := s.sessions.Clear(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear expired session: %w", err)
		}
	case errors.Is(err, token.ErrMalformedToken):
		st.Authenticated = false
		if err := s.sessions.Clear(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear malformed session: %w", err)
		}
	case err != nil:
		// Токен читается, но обязательных claims в нем нет
		st.Authenticated = false
	default:
		st.Subject = payload.Subject
		if payload.ExpiresAt != 0 {
			st.ExpiresAt = time.Unix(payload.ExpiresAt, 0)
		}
	}

	return st, nil
}
