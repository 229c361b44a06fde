// Package token декодирует payload сессионного токена без проверки подписи.
// Проверка подписи — зона ответственности сервера; расшифрованный payload
// используется только для маршрутизации и отображения, не для авторизации.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ошибки декодирования токена
var (
	// ErrMalformedToken означает структурную ошибку: не три сегмента,
	// битый base64 или не-JSON payload
	ErrMalformedToken = errors.New("malformed token")

	// ErrTokenExpired означает, что срок действия токена истек
	ErrTokenExpired = errors.New("token expired")

	// ErrMissingSubject означает отсутствие обязательного claim "sub"
	ErrMissingSubject = errors.New("token missing subject claim")

	// ErrMissingUserID означает, что ни один claim не идентифицирует пользователя
	ErrMissingUserID = errors.New("token missing user identification")
)

// Claims, которые разбираются в именованные поля Payload.
// Все остальные попадают в Extra.
var knownClaims = map[string]struct{}{
	"sub":    {},
	"userId": {},
	"nameid": {},
	"iat":    {},
	"exp":    {},
}

// Payload представляет расшифрованный payload токена
type Payload struct {
	Subject   string            // claim "sub", обязателен
	UserID    string            // claim "userId" или "nameid", опционален
	IssuedAt  int64             // unix-секунды, 0 если claim отсутствует
	ExpiresAt int64             // unix-секунды, 0 = токен без срока действия
	Extra     map[string]string // нераспознанные claims как есть
}

// Identifier возвращает идентификатор пользователя из токена.
// Если явного userId claim нет, идентификатором служит subject —
// сервер кладет id в разные claims, sub всегда выступает fallback.
func (p *Payload) Identifier() string {
	if p.UserID != "" {
		return p.UserID
	}
	return p.Subject
}

// Codec декодирует и валидирует токены
type Codec struct {
	parser *jwt.Parser
	now    func() time.Time
}

// New создает новый Codec
func New() *Codec {
	return &Codec{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// Decode разбирает токен и валидирует его payload.
// Подпись не проверяется. Функция чистая: зависит только от входа
// и текущего времени.
func (c *Codec) Decode(raw string) (*Payload, error) {
	clean := stripBearer(raw)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty token", ErrMalformedToken)
	}

	// ParseUnverified проверяет структуру из трех сегментов,
	// декодирует base64url и разбирает JSON payload
	claims := jwt.MapClaims{}
	if _, _, err := c.parser.ParseUnverified(clean, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if subject == "" {
		return nil, ErrMissingSubject
	}

	payload := &Payload{
		Subject: subject,
		UserID:  stringClaim(claims, "userId"),
	}
	if payload.UserID == "" {
		payload.UserID = stringClaim(claims, "nameid")
	}

	// В теории недостижимо: subject уже проверен выше и служит
	// идентификатором по умолчанию. Проверка сохранена сознательно —
	// она фиксирует контракт "токен обязан кого-то представлять".
	if payload.Identifier() == "" {
		return nil, ErrMissingUserID
	}

	if iat, err := claims.GetIssuedAt(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	} else if iat != nil {
		payload.IssuedAt = iat.Unix()
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if exp != nil {
		payload.ExpiresAt = exp.Unix()
		// Строго в прошлом: токен с exp == now еще действителен
		if c.now().Unix() > payload.ExpiresAt {
			return nil, ErrTokenExpired
		}
	}

	for name, value := range claims {
		if _, ok := knownClaims[name]; ok {
			continue
		}
		if payload.Extra == nil {
			payload.Extra = make(map[string]string)
		}
		payload.Extra[name] = fmt.Sprint(value)
	}

	return payload, nil
}

// stripBearer убирает префикс схемы "Bearer " без учета регистра
func stripBearer(raw string) string {
	const scheme = "bearer"
	if len(raw) > len(scheme) && strings.EqualFold(raw[:len(scheme)], scheme) {
		rest := raw[len(scheme):]
		if trimmed := strings.TrimLeft(rest, " \t"); trimmed != rest {
			return trimmed
		}
	}
	return raw
}

// stringClaim возвращает claim как строку.
// Числовые id приводятся к десятичной записи.
func stringClaim(claims jwt.MapClaims, name string) string {
	switch v := claims[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
