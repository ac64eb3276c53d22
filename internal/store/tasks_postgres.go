package store

import (
	"context"
	"database/sql"
	"errors"

	"contacthub/internal/models"
)

// PostgresTaskStore implements TaskStore on the shared *sql.DB.
type PostgresTaskStore struct {
	db *sql.DB
}

func NewPostgresTaskStore(db *sql.DB) *PostgresTaskStore {
	return &PostgresTaskStore{db: db}
}

const taskColumns = `id, contact_id, title, description, due_date, completed, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	t := &models.Task{}
	err := row.Scan(&t.ID, &t.ContactID, &t.Title, &t.Description, &t.DueDate,
		&t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *PostgresTaskStore) queryTasks(ctx context.Context, query string, args ...any) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.ContactID, &t.Title, &t.Description, &t.DueDate,
			&t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *PostgresTaskStore) GetAll(ctx context.Context) ([]models.Task, error) {
	return s.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id::bigint`)
}

func (s *PostgresTaskStore) GetByID(ctx context.Context, id string) (*models.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	return scanTask(row)
}

func (s *PostgresTaskStore) GetByContactID(ctx context.Context, contactID string) ([]models.Task, error) {
	return s.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE contact_id = $1 ORDER BY id::bigint`, contactID)
}

func (s *PostgresTaskStore) Create(ctx context.Context, in models.CreateTaskInput) (*models.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO tasks (id, contact_id, title, description, due_date, completed, created_at, updated_at)
		SELECT (COALESCE(MAX(id::bigint), 0) + 1)::text, $1, $2, $3, $4, FALSE, NOW(), NOW()
		FROM tasks
		RETURNING `+taskColumns,
		in.ContactID, in.Title, in.Description, in.DueDate)
	return scanTask(row)
}

func (s *PostgresTaskStore) Update(ctx context.Context, id string, in models.UpdateTaskInput) (*models.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE tasks
		SET title       = COALESCE($2, title),
		    description = COALESCE($3, description),
		    due_date    = COALESCE($4, due_date),
		    completed   = COALESCE($5, completed),
		    updated_at  = NOW()
		WHERE id = $1
		RETURNING `+taskColumns,
		id, in.Title, in.Description, in.DueDate, in.Completed)
	t, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *PostgresTaskStore) Toggle(ctx context.Context, id string) (*models.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE tasks
		SET completed = NOT completed, updated_at = NOW()
		WHERE id = $1
		RETURNING `+taskColumns, id)
	t, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *PostgresTaskStore) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (s *PostgresTaskStore) DeleteByContactID(ctx context.Context, contactID string) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE contact_id = $1`, contactID)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}

func (s *PostgresTaskStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count)
	return count, err
}

// Refresh is a no-op: the database is always read live.
func (s *PostgresTaskStore) Refresh(ctx context.Context) error {
	return nil
}

func (s *PostgresTaskStore) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tasks`)
	return err
}
