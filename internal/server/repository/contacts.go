package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
)

// ContactsRepository реализует хранение контактов (PostgreSQL).
type ContactsRepository struct {
	db *sql.DB
}

// NewContactsRepository создаёт новый экземпляр ContactsRepository.
func NewContactsRepository(db *sql.DB) *ContactsRepository {
	return &ContactsRepository{db: db}
}

const contactColumns = `id, user_id, name, email, phone, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// ListByUser возвращает все контакты пользователя, старые сверху.
func (r *ContactsRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+contactColumns+`
		 FROM contacts
		 WHERE user_id = $1
		 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "select contacts")
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan contact")
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate contacts")
	}

	return contacts, nil
}

// Create сохраняет новый контакт пользователя c.UserID.
func (r *ContactsRepository) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	created, err := scanContact(r.db.QueryRowContext(ctx,
		`INSERT INTO contacts (user_id, name, email, phone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+contactColumns,
		c.UserID, c.Name, c.Email, c.Phone,
	))
	if err != nil {
		return models.Contact{}, errors.Wrap(err, "insert contact")
	}
	return created, nil
}

// GetByID возвращает контакт по id без учёта владельца:
// проверку владельца делает сервис, чтобы отличать 404 от 403.
func (r *ContactsRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Contact, error) {
	c, err := scanContact(r.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`,
		id,
	))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, errors.WithStack(serr.ErrContactNotFound)
		}
		return models.Contact{}, errors.Wrap(err, "select contact")
	}
	return c, nil
}

// Update перезаписывает name/email/phone и обновляет updated_at.
//
// В WHERE участвует user_id: даже если контакт сменит владельца между
// проверкой и обновлением, чужая запись не изменится.
func (r *ContactsRepository) Update(ctx context.Context, c models.Contact) (models.Contact, error) {
	updated, err := scanContact(r.db.QueryRowContext(ctx,
		`UPDATE contacts
		 SET name = $1, email = $2, phone = $3, updated_at = now()
		 WHERE id = $4 AND user_id = $5
		 RETURNING `+contactColumns,
		c.Name, c.Email, c.Phone, c.ID, c.UserID,
	))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, errors.WithStack(serr.ErrContactNotFound)
		}
		return models.Contact{}, errors.Wrap(err, "update contact")
	}
	return updated, nil
}

// Delete удаляет контакт пользователя и возвращает удалённую запись.
func (r *ContactsRepository) Delete(ctx context.Context, id, userID uuid.UUID) (models.Contact, error) {
	deleted, err := scanContact(r.db.QueryRowContext(ctx,
		`DELETE FROM contacts
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+contactColumns,
		id, userID,
	))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, errors.WithStack(serr.ErrContactNotFound)
		}
		return models.Contact{}, errors.Wrap(err, "delete contact")
	}
	return deleted, nil
}
