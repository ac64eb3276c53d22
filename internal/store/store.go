// Package store owns the persistent collection for each entity kind. Two
// backends implement the same contracts: a JSON file store (default) and a
// Postgres store selected through configuration.
package store

import (
	"context"
	"errors"

	"contacthub/internal/models"
)

// ErrNotFound indicates a requested record is missing from the collection.
var ErrNotFound = errors.New("record not found")

// ContactStore persists the contact collection. Reads that miss return
// (nil, nil); only Update signals a missing id with ErrNotFound.
type ContactStore interface {
	GetAll(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	GetByPhone(ctx context.Context, phone string) (*models.Contact, error)
	Create(ctx context.Context, in models.CreateContactInput) (*models.Contact, error)
	Update(ctx context.Context, id string, in models.UpdateContactInput) (*models.Contact, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	// Refresh reloads the collection from the backing medium. The stores
	// never reload opportunistically; callers that share state with another
	// process ask for it explicitly.
	Refresh(ctx context.Context) error
	// Reset drops every record and persists the empty collection. A testing
	// and tooling affordance, not part of the request flow.
	Reset(ctx context.Context) error
}

// TaskStore persists the task collection.
type TaskStore interface {
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	GetByContactID(ctx context.Context, contactID string) ([]models.Task, error)
	Create(ctx context.Context, in models.CreateTaskInput) (*models.Task, error)
	Update(ctx context.Context, id string, in models.UpdateTaskInput) (*models.Task, error)
	Toggle(ctx context.Context, id string) (*models.Task, error)
	Delete(ctx context.Context, id string) (bool, error)
	// DeleteByContactID removes every task owned by the contact and returns
	// the count. Nothing is written when the count is zero.
	DeleteByContactID(ctx context.Context, contactID string) (int, error)
	Count(ctx context.Context) (int, error)
	Refresh(ctx context.Context) error
	Reset(ctx context.Context) error
}
