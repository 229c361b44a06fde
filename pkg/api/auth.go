package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Login    string `json:"login"`    // логин пользователя
	Password string `json:"password"` // пароль
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Login       string `json:"login"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Description string `json:"description,omitempty"`
}

// AuthResponse представляет ответ сервера на login/register
// Сервер возвращает токен и профиль пользователя одной парой
type AuthResponse struct {
	AccessToken string `json:"accessToken"` // bearer токен
	User        User   `json:"user"`        // профиль аутентифицированного пользователя
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
