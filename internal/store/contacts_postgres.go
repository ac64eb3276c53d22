package store

import (
	"context"
	"database/sql"
	"errors"

	"contacthub/internal/models"
)

// PostgresContactStore implements ContactStore on a shared *sql.DB. It keeps
// the same id-assignment semantics as the JSON store: max numeric id plus one.
type PostgresContactStore struct {
	db *sql.DB
}

func NewPostgresContactStore(db *sql.DB) *PostgresContactStore {
	return &PostgresContactStore{db: db}
}

const contactColumns = `id, name, email, phone, address, created_at`

func scanContact(row interface{ Scan(...any) error }) (*models.Contact, error) {
	c := &models.Contact{}
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *PostgresContactStore) GetAll(ctx context.Context) ([]models.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY id::bigint`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *PostgresContactStore) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	return scanContact(row)
}

func (s *PostgresContactStore) GetByPhone(ctx context.Context, phone string) (*models.Contact, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE phone = $1 LIMIT 1`, phone)
	return scanContact(row)
}

func (s *PostgresContactStore) Create(ctx context.Context, in models.CreateContactInput) (*models.Contact, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO contacts (id, name, email, phone, address, created_at)
		SELECT (COALESCE(MAX(id::bigint), 0) + 1)::text, $1, $2, $3, $4, NOW()
		FROM contacts
		RETURNING `+contactColumns,
		in.Name, in.Email, in.Phone, in.Address)
	return scanContact(row)
}

func (s *PostgresContactStore) Update(ctx context.Context, id string, in models.UpdateContactInput) (*models.Contact, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE contacts
		SET name    = COALESCE($2, name),
		    email   = COALESCE($3, email),
		    phone   = COALESCE($4, phone),
		    address = COALESCE($5, address)
		WHERE id = $1
		RETURNING `+contactColumns,
		id, in.Name, in.Email, in.Phone, in.Address)
	c, err := scanContact(row)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *PostgresContactStore) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (s *PostgresContactStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count)
	return count, err
}

// Refresh is a no-op: the database is always read live.
func (s *PostgresContactStore) Refresh(ctx context.Context) error {
	return nil
}

func (s *PostgresContactStore) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM contacts`)
	return err
}
