package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avdeenkov/huddle/internal/client/identity"
	"github.com/avdeenkov/huddle/internal/client/session"
	"github.com/avdeenkov/huddle/pkg/api"
)

// ErrUnauthorized означает, что сервер отверг токен (401/403).
// Сессию после такой ошибки нужно сбросить и отправить пользователя на login.
var ErrUnauthorized = errors.New("unauthorized")

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	sessions   *session.Manager
	baseURL    string
}

// NewClient создает новый API клиент.
// Токен берется из sessions заново перед каждым авторизованным запросом.
func NewClient(baseURL string, sessions *session.Manager) *Client {
	return &Client{
		baseURL:  baseURL,
		sessions: sessions,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// doRequest выполняет HTTP запрос без авторизации
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	return c.send(ctx, method, path, "", body, result)
}

// doAuthRequest выполняет запрос с bearer токеном текущей сессии.
// Отсутствие токена обрывает запрос локально, до любого сетевого вызова.
func (c *Client) doAuthRequest(ctx context.Context, method, path string, body, result any) error {
	token := c.sessions.Token()
	if token == "" {
		return identity.ErrNotAuthenticated
	}
	return c.send(ctx, method, path, token, body, result)
}

// send выполняет HTTP запрос
func (c *Client) send(ctx context.Context, method, path, token string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if clientID := c.sessions.ClientID(); clientID != "" {
		req.Header.Set("X-Client-Id", clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Отказ в авторизации выделяем типизированно: по нему вызывающая
	// сторона сбрасывает сессию, остальные ошибки сессию не трогают
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: server rejected token (%d)", ErrUnauthorized, resp.StatusCode)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
