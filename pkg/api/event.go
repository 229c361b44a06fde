package api

// Видимость мероприятия
const (
	VisibilityEveryone = "EVERYONE"
	VisibilityFriends  = "FRIENDS"
	VisibilityGroup    = "GROUP"
)

// Тип владельца мероприятия
const (
	OwnerTypeUser  = "USER"
	OwnerTypeGroup = "GROUP"
)

// Event представляет мероприятие
type Event struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"ownerId"`
	OwnerType   string `json:"ownerType"` // USER | GROUP
	Title       string `json:"title"`
	Visibility  string `json:"visibility"`
	Description string `json:"description,omitempty"`
	Time        string `json:"time"`
	Date        string `json:"date"`
}

// EventRequest представляет запрос на создание/обновление мероприятия
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility"`
	Time        string `json:"time"`
	Date        string `json:"date"`
	OwnerID     int64  `json:"ownerId"`
	OwnerType   string `json:"ownerType"`
}

// JoinEventRequest представляет запрос на участие в мероприятии
type JoinEventRequest struct {
	EventID int64 `json:"eventId"`
	UserID  int64 `json:"userId"`
}
