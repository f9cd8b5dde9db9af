// Package repository реализует доступ к PostgreSQL.
// Репозитории отвечают только за сохранение и извлечение данных без бизнес-логики.
package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jackc/pgconn"
	"github.com/pkg/errors"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
)

// pgUniqueViolation — SQLSTATE unique_violation.
const pgUniqueViolation = "23505"

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет пользователя. Уникальность email гарантирует индекс
// users_email_uidx, его нарушение превращается в ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	u := models.User{Username: username, Email: email, PasswordHash: passwordHash}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1,$2,$3)
		 RETURNING id, created_at, updated_at`,
		username, email, passwordHash,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return models.User{}, errors.WithStack(serr.ErrAlreadyExists)
		}
		return models.User{}, errors.Wrap(err, "insert user")
	}

	return u, nil
}

// GetByEmail ищет пользователя по email. Нет строки — ErrNotFound.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at, updated_at
		 FROM users WHERE email=$1`,
		email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return models.User{}, errors.WithStack(serr.ErrNotFound)
		}
		return models.User{}, errors.Wrap(err, "select user by email")
	}

	return u, nil
}

// Ping проверяет доступность базы (для /health).
func (r *UsersRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
