package user

import (
	"context"
	"errors"
	e "roleplay/internal/core/domain/errors"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

type PgxResetTokenRepository struct {
	db db.Querier
}

func NewPgxResetTokenRepository(db db.Querier) *PgxResetTokenRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxResetTokenRepository{db: db}
}

func (r *PgxResetTokenRepository) Create(
	ctx context.Context,
	input user.CreateResetTokenInput,
) (t user.PasswordResetToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO password_reset_token (token, user_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING token, user_id, created_at`,
		string(input.Token),
		int64(input.UserID),
		input.CreatedAt,
	)
	return decodeResetToken(row)
}

func (r *PgxResetTokenRepository) GetByToken(
	ctx context.Context,
	token user.ResetToken,
) (t user.PasswordResetToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT token, user_id, created_at FROM password_reset_token WHERE token = $1`,
		string(token),
	)
	t, err = decodeResetToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, user.ErrResetTokenDoesNotExist
	}
	return t, err
}

func (r *PgxResetTokenRepository) Delete(ctx context.Context, token user.ResetToken) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM password_reset_token WHERE token = $1`,
		string(token),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrResetTokenDoesNotExist
	}
	return nil
}

func decodeResetToken(row pgx.Row) (t user.PasswordResetToken, err error) {
	var (
		token     string
		userID    int64
		createdAt time.Time
	)
	if err := row.Scan(&token, &userID, &createdAt); err != nil {
		return t, err
	}
	return user.PasswordResetToken{
		Token:     user.ResetToken(token),
		UserID:    user.ID(userID),
		CreatedAt: createdAt,
	}, nil
}
