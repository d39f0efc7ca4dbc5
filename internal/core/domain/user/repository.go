package user

import (
	"context"
	c "roleplay/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	Username     Username
	PasswordHash PasswordHash
	Avatar       c.Optional[string]
	CreatedAt    time.Time
}

type UpdateUserInput struct {
	ID           ID
	Email        c.Email
	PasswordHash PasswordHash
	Avatar       c.Optional[string]
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
}

type CreateResetTokenInput struct {
	UserID    ID
	Token     ResetToken
	CreatedAt time.Time
}

type ResetTokenRepository interface {
	Create(ctx context.Context, input CreateResetTokenInput) (PasswordResetToken, error)
	GetByToken(ctx context.Context, token ResetToken) (PasswordResetToken, error)
	// Delete removes the token and returns ErrResetTokenDoesNotExist if no
	// row was deleted, so a concurrent consume of the same token fails.
	Delete(ctx context.Context, token ResetToken) error
}
