package user

import (
	"context"
	"time"
)

type ResetToken string

// PasswordResetToken is a single-use credential proving the holder requested
// a password reset for the owning user.
type PasswordResetToken struct {
	Token     ResetToken
	UserID    ID
	CreatedAt time.Time
}

// IsExpired reports whether the token is older than validDuration.
// A token aged exactly validDuration is still valid.
func (t PasswordResetToken) IsExpired(now time.Time, validDuration time.Duration) bool {
	return now.Sub(t.CreatedAt) > validDuration
}

type ResetTokenGenerator interface {
	GenerateResetToken() ResetToken
}

type PasswordResetTokenSender interface {
	SendResetToken(ctx context.Context, u User, token ResetToken, resetPasswordURL string) error
}
