package resetpassword

import (
	"context"
	"errors"
	e "roleplay/internal/core/domain/errors"
	"roleplay/internal/core/domain/logging"
	uow "roleplay/internal/core/domain/unit_of_work"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/core/services"
	"time"
)

type Input struct {
	Token       user.ResetToken
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log                logging.Logger
	unitOfWork         uow.UnitOfWork
	passwordHasher     user.PasswordHasher
	tokenValidDuration time.Duration
	now                func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	tokenValidDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		unitOfWork:         unitOfWork,
		passwordHasher:     passwordHasher,
		tokenValidDuration: tokenValidDuration,
		now:                now,
	}
}

// Run consumes the token and sets the new password within a single
// transaction, so two concurrent resets with the same token cannot both
// succeed.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	token, err := uow.ResetTokens().GetByToken(ctx, input.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrResetTokenDoesNotExist) {
		s.log.Info(ctx, "Password reset token not found.")
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	if token.IsExpired(s.now(), s.tokenValidDuration) {
		s.log.Info(
			ctx,
			"Password reset token has expired.",
			logging.Entry("userID", token.UserID),
			logging.Entry("createdAt", token.CreatedAt),
		)
		return result, user.ErrResetTokenExpired
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	if err := uow.Users().SetPassword(ctx, token.UserID, newPasswordHash); err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userID", token.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = uow.ResetTokens().Delete(ctx, input.Token)
	if errors.Is(err, user.ErrResetTokenDoesNotExist) {
		s.log.Info(ctx, "Password reset token already consumed.", logging.Entry("userID", token.UserID))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", token.UserID))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", token.UserID))
		return result, err
	}

	s.log.Info(ctx, "New password has been successfully set.", logging.Entry("userID", token.UserID))
	return result, nil
}
