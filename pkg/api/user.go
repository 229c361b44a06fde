package api

// User представляет профиль пользователя
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"` // формат даты определяется сервером
}

// Friend представляет друга пользователя
type Friend struct {
	ID      int64  `json:"id"`
	Login   string `json:"login"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// FriendsResponse представляет список друзей пользователя
type FriendsResponse struct {
	Friends    []Friend `json:"friends"`
	TotalCount int      `json:"totalCount"`
}

// FriendRequest представляет заявку в друзья
type FriendRequest struct {
	UserID   int64  `json:"userId"`
	FriendID int64  `json:"friendId"`
	Status   string `json:"status"` // PENDING по умолчанию
}

// UpdateUserRequest представляет изменяемые поля профиля
type UpdateUserRequest struct {
	Name        string `json:"name,omitempty"`
	Surname     string `json:"surname,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
}
