package resetpassword

import (
	"context"
	c "roleplay/internal/core/domain/common"
	"roleplay/internal/core/domain/logging"
	uow "roleplay/internal/core/domain/unit_of_work"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const USER_ID = 1
const RESET_TOKEN = "test-reset-token"
const TOKEN_VALID_DURATION = 2 * time.Hour

var NOW time.Time = time.Date(2021, 1, 15, 15, 30, 30, 0, time.UTC)

type suite struct {
	log        *logging.FakeLogger
	unitOfWork *uow.FakeUnitOfWork
	hasher     *user.FakePasswordHasher
}

func setupSuite() *suite {
	s := &suite{
		log:        logging.NewFakeLogger(),
		unitOfWork: uow.NewFakeUnitOfWork(),
		hasher:     user.NewFakePasswordHasher(),
	}
	s.unitOfWork.Context.UserRepository.Users = []user.User{{
		ID:       USER_ID,
		Email:    c.NewEmail("test@test.test"),
		Username: "test",
	}}
	return s
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.unitOfWork, s.hasher, TOKEN_VALID_DURATION, func() time.Time { return NOW })
}

func (s *suite) createToken(createdAt time.Time) {
	s.unitOfWork.Context.ResetTokenRepository.Tokens = []user.PasswordResetToken{{
		Token:     RESET_TOKEN,
		UserID:    USER_ID,
		CreatedAt: createdAt,
	}}
}

func TestPasswordSuccessfullyReset(t *testing.T) {
	cases := []struct {
		id        string
		createdAt time.Time
	}{
		{id: "fresh token", createdAt: NOW},
		{id: "one hour old", createdAt: NOW.Add(-time.Hour)},
		{id: "exactly at the validity boundary", createdAt: NOW.Add(-TOKEN_VALID_DURATION)},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			suite.createToken(testcase.createdAt)
			service := suite.createService()

			// Exercise ---
			_, err := service.Run(context.Background(), Input{
				Token:       RESET_TOKEN,
				NewPassword: user.RawPassword("new-password"),
			})

			// Verify ---
			require.NoError(t, err)
			require.True(t, suite.unitOfWork.Context.WasCommitCalled)

			u, err := suite.unitOfWork.Context.UserRepository.GetByID(context.Background(), USER_ID)
			require.NoError(t, err)
			require.True(t, suite.hasher.ValidatePassword("new-password", u.PasswordHash))
		})
	}
}

func TestTokenIsConsumed(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.createToken(NOW)
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		Token:       RESET_TOKEN,
		NewPassword: user.RawPassword("new-password"),
	})
	require.NoError(t, err)

	_, err = service.Run(context.Background(), Input{
		Token:       RESET_TOKEN,
		NewPassword: user.RawPassword("other-password"),
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrResetTokenDoesNotExist)
}

func TestTokenDoesNotExist(t *testing.T) {
	suite := setupSuite()
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		Token:       "unknown-token",
		NewPassword: user.RawPassword("new-password"),
	})

	require.ErrorIs(t, err, user.ErrResetTokenDoesNotExist)
	require.False(t, suite.unitOfWork.Context.WasCommitCalled)
}

func TestTokenExpired(t *testing.T) {
	cases := []struct {
		id        string
		createdAt time.Time
	}{
		{id: "one minute past the boundary", createdAt: NOW.Add(-TOKEN_VALID_DURATION - time.Minute)},
		{id: "one day old", createdAt: NOW.Add(-24 * time.Hour)},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			suite.createToken(testcase.createdAt)
			service := suite.createService()

			// Exercise ---
			_, err := service.Run(context.Background(), Input{
				Token:       RESET_TOKEN,
				NewPassword: user.RawPassword("new-password"),
			})

			// Verify ---
			require.ErrorIs(t, err, user.ErrResetTokenExpired)
			require.False(t, suite.unitOfWork.Context.WasCommitCalled)

			// The expired token stays in place, the password does not change.
			_, err = suite.unitOfWork.Context.ResetTokenRepository.GetByToken(context.Background(), RESET_TOKEN)
			require.NoError(t, err)
		})
	}
}
