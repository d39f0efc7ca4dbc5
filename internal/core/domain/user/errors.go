package user

import (
	"errors"
)

var (
	ErrUserDoesNotExist       = errors.New("user does not exist")
	ErrEmailAlreadyExists     = errors.New("email is already in use")
	ErrUsernameAlreadyExists  = errors.New("username is already in use")
	ErrResetTokenDoesNotExist = errors.New("password reset token does not exist")
	ErrResetTokenExpired      = errors.New("token has expired")
)
