package response

import (
	"roleplay/internal/core/domain/user"
	"time"
)

// User never carries the password hash.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UserResult struct {
	User User `json:"user"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.Username = string(du.Username)
	if du.Avatar.IsPresent {
		avatar := du.Avatar.Value
		u.Avatar = &avatar
	}
	u.CreatedAt = du.CreatedAt
}
