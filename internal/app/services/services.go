package services

import (
	"roleplay/internal/app/deps"
	"roleplay/internal/core/services"
	createuser "roleplay/internal/core/services/create_user"
	resetpassword "roleplay/internal/core/services/reset_password"
	sendpasswordresettoken "roleplay/internal/core/services/send_password_reset_token"
	updateuser "roleplay/internal/core/services/update_user"
)

type Services struct {
	CreateUser             services.Service[createuser.Input, createuser.Result]
	UpdateUser             services.Service[updateuser.Input, updateuser.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateUser = createuser.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)
	s.UpdateUser = updateuser.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
	)
	s.SendPasswordResetToken = sendpasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.ResetTokenRepository,
		deps.ResetTokenGenerator,
		deps.PasswordResetTokenSender,
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Config.PasswordResetValidDuration(),
		deps.Now,
	)

	return s
}
