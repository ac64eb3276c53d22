package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"contacthub/internal/models"
	"contacthub/internal/store"
	"contacthub/internal/validation"
)

// TaskService owns the task business rules. Creation does not verify that the
// referenced contact exists; the contactId is only required to be non-blank.
type TaskService struct {
	store  store.TaskStore
	logger *logrus.Logger
}

func NewTaskService(st store.TaskStore, logger *logrus.Logger) *TaskService {
	return &TaskService{store: st, logger: logger}
}

func (s *TaskService) GetAll(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetByContactID(ctx context.Context, contactID string) ([]models.Task, error) {
	if strings.TrimSpace(contactID) == "" {
		return nil, fmt.Errorf("%w: contact id is required", ErrInvalidArgument)
	}
	tasks, err := s.store.GetByContactID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks for contact %s: %w", contactID, err)
	}
	return tasks, nil
}

// GetByID returns (nil, nil) for a missing id.
func (s *TaskService) GetByID(ctx context.Context, id string) (*models.Task, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: task id is required", ErrInvalidArgument)
	}
	return s.store.GetByID(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, in models.CreateTaskInput) (*models.Task, error) {
	if res := validation.ValidateTaskCreate(in); !res.Valid() {
		return nil, newValidationError(res)
	}
	task, err := s.store.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"task_id":    task.ID,
		"contact_id": task.ContactID,
	}).Info("task created")
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id string, in models.UpdateTaskInput) (*models.Task, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	if res := validation.ValidateTaskUpdate(in); !res.Valid() {
		return nil, newValidationError(res)
	}
	task, err := s.store.Update(ctx, id, in)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}
	return task, nil
}

func (s *TaskService) Toggle(ctx context.Context, id string) (*models.Task, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	task, err := s.store.Toggle(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("toggle task %s: %w", id, err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete task %s: %w", id, err)
	}
	s.logger.WithField("task_id", id).Info("task deleted")
	return deleted, nil
}

// DeleteByContactID is the cascade used by the HTTP layer when a contact is
// deleted. It returns how many tasks were removed.
func (s *TaskService) DeleteByContactID(ctx context.Context, contactID string) (int, error) {
	removed, err := s.store.DeleteByContactID(ctx, contactID)
	if err != nil {
		return 0, fmt.Errorf("delete tasks for contact %s: %w", contactID, err)
	}
	if removed > 0 {
		s.logger.WithFields(logrus.Fields{
			"contact_id": contactID,
			"removed":    removed,
		}).Info("tasks cascade-deleted")
	}
	return removed, nil
}

func (s *TaskService) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}
