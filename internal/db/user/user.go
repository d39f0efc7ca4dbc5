package user

import (
	"context"
	"database/sql"
	"errors"
	c "roleplay/internal/core/domain/common"
	e "roleplay/internal/core/domain/errors"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/db"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"
const USERNAME_CONSTRAINT_NAME = "user_username_idx"

type PgxUserRepository struct {
	db db.Querier
}

func NewPgxRepository(db db.Querier) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, username, password_hash, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, username, password_hash, avatar, created_at`,
		string(input.Email),
		string(input.Username),
		string(input.PasswordHash),
		encodeAvatar(input.Avatar),
		input.CreatedAt,
	)
	u, err = decodeUser(row)
	if err != nil {
		return u, decodeUniqueConstraintErr(err)
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, email, username, password_hash, avatar, created_at FROM "user" WHERE id = $1`,
		int64(id),
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, email, username, password_hash, avatar, created_at FROM "user" WHERE email = $1`,
		string(email),
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET email = $2, password_hash = $3, avatar = $4
		WHERE id = $1
		RETURNING id, email, username, password_hash, avatar, created_at`,
		int64(input.ID),
		string(input.Email),
		string(input.PasswordHash),
		encodeAvatar(input.Avatar),
	)
	u, err = decodeUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, decodeUniqueConstraintErr(err)
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_hash = $2 WHERE id = $1`,
		int64(id),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func encodeAvatar(avatar c.Optional[string]) sql.NullString {
	return sql.NullString{String: avatar.Value, Valid: avatar.IsPresent}
}

func decodeUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		email        string
		username     string
		passwordHash string
		avatar       sql.NullString
		createdAt    time.Time
	)
	if err := row.Scan(&id, &email, &username, &passwordHash, &avatar, &createdAt); err != nil {
		return u, err
	}
	return user.User{
		ID:           user.ID(id),
		Email:        c.Email(email),
		Username:     user.Username(username),
		PasswordHash: user.PasswordHash(passwordHash),
		Avatar:       c.NewOptional(avatar.String, avatar.Valid),
		CreatedAt:    createdAt,
	}, nil
}

func decodeUniqueConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE {
		switch pgErr.ConstraintName {
		case EMAIL_CONSTRAINT_NAME:
			return user.ErrEmailAlreadyExists
		case USERNAME_CONSTRAINT_NAME:
			return user.ErrUsernameAlreadyExists
		}
	}
	return err
}
