package sendpasswordresettoken

import (
	"context"
	"errors"
	c "roleplay/internal/core/domain/common"
	e "roleplay/internal/core/domain/errors"
	"roleplay/internal/core/domain/logging"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/core/services"
	"time"
)

type Input struct {
	Email            c.Email
	ResetPasswordURL string
}

type Result struct {
	Token user.ResetToken
}

type service struct {
	log                  logging.Logger
	userRepository       user.UserRepository
	resetTokenRepository user.ResetTokenRepository
	resetTokenGenerator  user.ResetTokenGenerator
	resetTokenSender     user.PasswordResetTokenSender
	now                  func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	resetTokenRepository user.ResetTokenRepository,
	resetTokenGenerator user.ResetTokenGenerator,
	resetTokenSender user.PasswordResetTokenSender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if resetTokenRepository == nil {
		panic(e.NewNilArgumentError("resetTokenRepository"))
	}
	if resetTokenGenerator == nil {
		panic(e.NewNilArgumentError("resetTokenGenerator"))
	}
	if resetTokenSender == nil {
		panic(e.NewNilArgumentError("resetTokenSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                  log,
		userRepository:       userRepository,
		resetTokenRepository: resetTokenRepository,
		resetTokenGenerator:  resetTokenGenerator,
		resetTokenSender:     resetTokenSender,
		now:                  now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Report success so the endpoint does not leak account existence.
		s.log.Info(ctx, "Password reset requested for unknown email.", logging.Entry("email", input.Email))
		return result, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	token := s.resetTokenGenerator.GenerateResetToken()
	_, err = s.resetTokenRepository.Create(ctx, user.CreateResetTokenInput{
		UserID:    u.ID,
		Token:     token,
		CreatedAt: s.now(),
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := s.resetTokenSender.SendResetToken(ctx, u, token, input.ResetPasswordURL); err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Password reset token has been sent.", logging.Entry("userID", u.ID))
	result.Token = token
	return result, nil
}
