package store

import (
	"context"
	"sync"
	"time"

	"contacthub/internal/models"
)

type tasksDocument struct {
	Tasks []models.Task `json:"tasks"`
}

// JSONTaskStore mirrors the task collection to a JSON file the same way
// JSONContactStore does for contacts. Task ids are numbered independently
// from contact ids.
type JSONTaskStore struct {
	path string

	mu     sync.Mutex
	loaded bool
	tasks  []models.Task
}

func NewJSONTaskStore(path string) *JSONTaskStore {
	return &JSONTaskStore{path: path}
}

func (s *JSONTaskStore) load() error {
	if s.loaded {
		return nil
	}
	var doc tasksDocument
	if err := readDocument(s.path, &doc); err != nil {
		return err
	}
	s.tasks = doc.Tasks
	s.loaded = true
	return nil
}

func (s *JSONTaskStore) persist() error {
	return writeDocument(s.path, tasksDocument{Tasks: s.tasks})
}

func (s *JSONTaskStore) GetAll(ctx context.Context) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}
	return append([]models.Task(nil), s.tasks...), nil
}

func (s *JSONTaskStore) GetByID(ctx context.Context, id string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (s *JSONTaskStore) GetByContactID(ctx context.Context, contactID string) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}
	var tasks []models.Task
	for i := range s.tasks {
		if s.tasks[i].ContactID == contactID {
			tasks = append(tasks, s.tasks[i])
		}
	}
	return tasks, nil
}

func (s *JSONTaskStore) Create(ctx context.Context, in models.CreateTaskInput) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}
	ids := make([]string, len(s.tasks))
	for i := range s.tasks {
		ids[i] = s.tasks[i].ID
	}
	now := time.Now().UTC()
	task := models.Task{
		ID:          nextID(ids),
		ContactID:   in.ContactID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks = append(s.tasks, task)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *JSONTaskStore) Update(ctx context.Context, id string, in models.UpdateTaskInput) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if in.Title != nil {
			s.tasks[i].Title = *in.Title
		}
		if in.Description != nil {
			s.tasks[i].Description = *in.Description
		}
		if in.DueDate != nil {
			s.tasks[i].DueDate = *in.DueDate
		}
		if in.Completed != nil {
			s.tasks[i].Completed = *in.Completed
		}
		// UpdatedAt is refreshed even for an empty partial update.
		s.tasks[i].UpdatedAt = time.Now().UTC()
		if err := s.persist(); err != nil {
			return nil, err
		}
		t := s.tasks[i]
		return &t, nil
	}
	return nil, ErrNotFound
}

func (s *JSONTaskStore) Toggle(ctx context.Context, id string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Completed = !s.tasks[i].Completed
		s.tasks[i].UpdatedAt = time.Now().UTC()
		if err := s.persist(); err != nil {
			return nil, err
		}
		t := s.tasks[i]
		return &t, nil
	}
	return nil, ErrNotFound
}

func (s *JSONTaskStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return false, err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			if err := s.persist(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *JSONTaskStore) DeleteByContactID(ctx context.Context, contactID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return 0, err
	}
	kept := s.tasks[:0]
	removed := 0
	for i := range s.tasks {
		if s.tasks[i].ContactID == contactID {
			removed++
			continue
		}
		kept = append(kept, s.tasks[i])
	}
	if removed == 0 {
		return 0, nil
	}
	s.tasks = kept
	if err := s.persist(); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *JSONTaskStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return 0, err
	}
	return len(s.tasks), nil
}

func (s *JSONTaskStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var doc tasksDocument
	if err := readDocument(s.path, &doc); err != nil {
		return err
	}
	s.tasks = doc.Tasks
	s.loaded = true
	return nil
}

func (s *JSONTaskStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
	s.loaded = true
	return s.persist()
}
