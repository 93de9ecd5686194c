// internal/models/user.go
package models

type User struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Role       UserRole `json:"role"`
	IsBanned   bool     `json:"is_banned,omitempty"`
	TelegramID int64    `json:"telegram_id,omitempty"`
	FirstName  string   `json:"first_name,omitempty"`
	LastName   string   `json:"last_name,omitempty"`
	PhotoURL   string   `json:"photo_url,omitempty"`
}
