// Package guard решает, достижим ли защищенный маршрут при текущей сессии.
package guard

import (
	"github.com/avdeenkov/huddle/internal/client/session"
)

// LoginRoute — куда отправляется неавторизованный пользователь
const LoginRoute = "/login"

// Decision представляет результат проверки маршрута
type Decision struct {
	Allowed    bool
	RedirectTo string // непустой только при Allowed == false
}

// Allow — положительное решение
var Allow = Decision{Allowed: true}

// Redirect возвращает решение с перенаправлением на path
func Redirect(path string) Decision {
	return Decision{RedirectTo: path}
}

// Guard проверяет маршруты по множеству защищенных.
// Проверка выполняется заново при каждом вызове: сессия, сброшенная
// между проверками, сразу дает redirect.
type Guard struct {
	sessions  *session.Manager
	protected map[string]struct{}
}

// New создает Guard для набора защищенных маршрутов
func New(sessions *session.Manager, protected ...string) *Guard {
	set := make(map[string]struct{}, len(protected))
	for _, route := range protected {
		set[route] = struct{}{}
	}
	return &Guard{
		sessions:  sessions,
		protected: set,
	}
}

// Check возвращает Allow для незащищенных маршрутов всегда, а для
// защищенных — только при наличии токена. Срок действия и роли здесь
// не проверяются: просроченный токен проявится ошибкой авторизации
// на первом же запросе к серверу.
func (g *Guard) Check(route string) Decision {
	if _, ok := g.protected[route]; !ok {
		return Allow
	}

	if g.sessions.Token() == "" {
		return Redirect(LoginRoute)
	}

	return Allow
}
