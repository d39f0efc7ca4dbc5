package user

import (
	"context"
	c "roleplay/internal/core/domain/common"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	USERNAME      = "test"
	PASSWORD_HASH = "test-password-hash"
	AVATAR        = "http://images.test/1"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateSuccess() {
	type test struct {
		id    string
		input user.CreateUserInput
	}
	cases := []test{
		{
			id: "with avatar",
			input: user.CreateUserInput{
				Email:        c.NewEmail(EMAIL),
				Username:     USERNAME,
				PasswordHash: PASSWORD_HASH,
				Avatar:       c.NewOptional(AVATAR, true),
				CreatedAt:    NOW,
			},
		},
		{
			id: "without avatar",
			input: user.CreateUserInput{
				Email:        c.NewEmail("other@test.test"),
				Username:     "other",
				PasswordHash: PASSWORD_HASH,
				CreatedAt:    NOW,
			},
		},
	}

	for _, testcase := range cases {
		suite.Run(testcase.id, func() {
			u, err := suite.repo.Create(context.Background(), testcase.input)

			assert := suite.Require()
			assert.Nil(err)
			assert.NotZero(u.ID)
			assert.Equal(testcase.input.Email, u.Email)
			assert.Equal(testcase.input.Username, u.Username)
			assert.Equal(testcase.input.PasswordHash, u.PasswordHash)
			assert.Equal(testcase.input.Avatar, u.Avatar)
			assert.True(testcase.input.CreatedAt.Equal(u.CreatedAt))
		})
	}
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	suite.createUser(EMAIL, USERNAME)

	_, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(EMAIL),
		Username:     "other",
		PasswordHash: PASSWORD_HASH,
		CreatedAt:    NOW,
	})

	suite.Require().ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (suite *testSuite) TestUsernameAlreadyExistsError() {
	suite.createUser(EMAIL, USERNAME)

	_, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail("other@test.test"),
		Username:     USERNAME,
		PasswordHash: PASSWORD_HASH,
		CreatedAt:    NOW,
	})

	suite.Require().ErrorIs(err, user.ErrUsernameAlreadyExists)
}

func (s *testSuite) TestGetByIDSuccess() {
	created := s.createUser(EMAIL, USERNAME)

	u, err := s.repo.GetByID(context.Background(), created.ID)

	s.Nil(err)
	s.Equal(created.ID, u.ID)
	s.Equal(created.Email, u.Email)
}

func (s *testSuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(context.Background(), user.ID(111222333))
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestGetByEmailSuccess() {
	created := s.createUser(EMAIL, USERNAME)

	u, err := s.repo.GetByEmail(context.Background(), c.NewEmail(EMAIL))

	s.Nil(err)
	s.Equal(created.ID, u.ID)
	s.Equal(created.Username, u.Username)
}

func (s *testSuite) TestGetByEmailNotFound() {
	s.createUser(EMAIL, USERNAME)

	_, err := s.repo.GetByEmail(context.Background(), c.NewEmail("unknown@test.test"))

	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestUpdateSuccess() {
	created := s.createUser(EMAIL, USERNAME)

	u, err := s.repo.Update(context.Background(), user.UpdateUserInput{
		ID:           created.ID,
		Email:        c.NewEmail("new@test.test"),
		PasswordHash: "new-password-hash",
		Avatar:       c.NewOptional("http://images.test/2", true),
	})

	s.Nil(err)
	s.Equal(created.ID, u.ID)
	s.Equal(c.Email("new@test.test"), u.Email)
	s.Equal(user.PasswordHash("new-password-hash"), u.PasswordHash)
	s.Equal(c.NewOptional("http://images.test/2", true), u.Avatar)
	// Username is immutable.
	s.Equal(created.Username, u.Username)
}

func (s *testSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(context.Background(), user.UpdateUserInput{
		ID:           user.ID(111222333),
		Email:        c.NewEmail(EMAIL),
		PasswordHash: PASSWORD_HASH,
	})
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) TestUpdateEmailAlreadyExists() {
	s.createUser("taken@test.test", "taken")
	created := s.createUser(EMAIL, USERNAME)

	_, err := s.repo.Update(context.Background(), user.UpdateUserInput{
		ID:           created.ID,
		Email:        c.NewEmail("taken@test.test"),
		PasswordHash: PASSWORD_HASH,
	})

	s.ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testSuite) TestSetPasswordSuccess() {
	created := s.createUser(EMAIL, USERNAME)

	err := s.repo.SetPassword(context.Background(), created.ID, "new-password-hash")

	s.Nil(err)
	u, err := s.repo.GetByID(context.Background(), created.ID)
	s.Nil(err)
	s.Equal(user.PasswordHash("new-password-hash"), u.PasswordHash)
}

func (s *testSuite) TestSetPasswordNotFound() {
	err := s.repo.SetPassword(context.Background(), user.ID(111222333), "new-password-hash")
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testSuite) createUser(email string, username string) user.User {
	u, err := s.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(email),
		Username:     user.Username(username),
		PasswordHash: PASSWORD_HASH,
		Avatar:       c.NewOptional(AVATAR, true),
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	return u
}
