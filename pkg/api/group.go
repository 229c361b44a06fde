package api

// Роли участников группы
const (
	RoleOwner  = "OWNER"
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// Group представляет группу
type Group struct {
	ID            int64  `json:"id"`
	CreatedAt     string `json:"createdAt,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	CreatorUserID int64  `json:"creatorUserId"`
}

// CreateGroupRequest представляет запрос на создание группы
type CreateGroupRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	CreatorUserID int64  `json:"creatorUserId"`
}

// GroupMembership представляет членство пользователя в группе
type GroupMembership struct {
	CreatedAt string `json:"createdAt,omitempty"`
	GroupID   int64  `json:"groupId"`
	UserID    int64  `json:"userId"`
	Role      string `json:"role"` // OWNER | ADMIN | MEMBER
}
