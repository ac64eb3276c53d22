package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"contacthub/internal/models"
	"contacthub/internal/store"
	"contacthub/internal/validation"
)

// ContactService owns the contact business rules. It has no knowledge of
// tasks: the cascade delete of a contact's tasks is composed by the HTTP
// layer to keep the dependency direction acyclic.
type ContactService struct {
	store  store.ContactStore
	logger *logrus.Logger
}

func NewContactService(st store.ContactStore, logger *logrus.Logger) *ContactService {
	return &ContactService{store: st, logger: logger}
}

func (s *ContactService) GetAll(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch contacts: %w", err)
	}
	return contacts, nil
}

// GetByID returns (nil, nil) for a missing id: absence is a valid result here,
// not a failure.
func (s *ContactService) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: contact id is required", ErrInvalidArgument)
	}
	return s.store.GetByID(ctx, id)
}

func (s *ContactService) Create(ctx context.Context, in models.CreateContactInput) (*models.Contact, error) {
	if res := validation.ValidateContactCreate(in); !res.Valid() {
		return nil, newValidationError(res)
	}
	// Phone uniqueness is a cross-record rule but is surfaced through the
	// same channel as field validation.
	existing, err := s.store.GetByPhone(ctx, in.Phone)
	if err != nil {
		return nil, fmt.Errorf("check phone uniqueness: %w", err)
	}
	if existing != nil {
		return nil, phoneExistsError()
	}
	contact, err := s.store.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	s.logger.WithField("contact_id", contact.ID).Info("contact created")
	return contact, nil
}

func (s *ContactService) Update(ctx context.Context, id string, in models.UpdateContactInput) (*models.Contact, error) {
	if in.Phone != nil {
		other, err := s.store.GetByPhone(ctx, *in.Phone)
		if err != nil {
			return nil, fmt.Errorf("check phone uniqueness: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, phoneExistsError()
		}
	}
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch contact %s: %w", id, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("contact %s: %w", id, ErrNotFound)
	}
	if res := validation.ValidateContactUpdate(in); !res.Valid() {
		return nil, newValidationError(res)
	}
	contact, err := s.store.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("contact %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update contact %s: %w", id, err)
	}
	s.logger.WithField("contact_id", id).Info("contact updated")
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("fetch contact %s: %w", id, err)
	}
	if existing == nil {
		return false, fmt.Errorf("contact %s: %w", id, ErrNotFound)
	}
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete contact %s: %w", id, err)
	}
	s.logger.WithField("contact_id", id).Info("contact deleted")
	return deleted, nil
}

// Search returns all contacts for a blank query, otherwise filters by
// case-insensitive substring match on name or email.
func (s *ContactService) Search(ctx context.Context, query string) ([]models.Contact, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	contacts, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if q == "" {
		return contacts, nil
	}
	matched := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Email), q) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// Sort returns a sorted copy; the input slice is never mutated. Field is one
// of name, email (case-insensitive) or createdAt (chronological); any other
// value sorts by name. Direction "desc" flips the order.
func (s *ContactService) Sort(contacts []models.Contact, field, direction string) []models.Contact {
	sorted := append([]models.Contact(nil), contacts...)
	less := func(a, b models.Contact) bool {
		switch field {
		case "email":
			return strings.ToLower(a.Email) < strings.ToLower(b.Email)
		case "createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	desc := direction == "desc"
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func (s *ContactService) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}
