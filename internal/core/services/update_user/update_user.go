package updateuser

import (
	"context"
	"errors"
	c "roleplay/internal/core/domain/common"
	e "roleplay/internal/core/domain/errors"
	"roleplay/internal/core/domain/logging"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/core/services"
)

type Input struct {
	UserID   user.ID
	Email    c.Email
	Password user.RawPassword
	Avatar   c.Optional[string]
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	updatedUser, err := s.userRepository.Update(ctx, user.UpdateUserInput{
		ID:           input.UserID,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Avatar:       input.Avatar,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User to update does not exist.", logging.Entry("userID", input.UserID))
		return result, err
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		s.log.Info(ctx, "User with the email already exists.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(ctx, "User successfully updated.", logging.Entry("userID", updatedUser.ID))
	result.User = updatedUser
	return result, nil
}
