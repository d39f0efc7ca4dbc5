package uow

import (
	"context"
	c "roleplay/internal/core/domain/common"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/db"
	dbuser "roleplay/internal/db/user"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestChangesVisibleAfterCommit() {
	ctx := context.Background()

	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)
	defer uow.Rollback(ctx)

	created, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        c.NewEmail("test@test.test"),
		Username:     "test",
		PasswordHash: "test-password-hash",
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	s.Require().Nil(uow.Commit(ctx))

	repo := dbuser.NewPgxRepository(s.pool)
	u, err := repo.GetByID(ctx, created.ID)
	s.Nil(err)
	s.Equal(created.ID, u.ID)
}

func (s *testSuite) TestChangesDiscardedAfterRollback() {
	ctx := context.Background()

	uow, err := s.uow.Begin(ctx)
	s.Require().Nil(err)

	created, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        c.NewEmail("test@test.test"),
		Username:     "test",
		PasswordHash: "test-password-hash",
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	s.Require().Nil(uow.Rollback(ctx))

	repo := dbuser.NewPgxRepository(s.pool)
	_, err = repo.GetByID(ctx, created.ID)
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}
