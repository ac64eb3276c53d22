package store

import (
	"context"
	"sync"
	"time"

	"contacthub/internal/models"
)

type contactsDocument struct {
	Contacts []models.Contact `json:"contacts"`
}

// JSONContactStore keeps the contact collection in memory and mirrors it to a
// JSON file after every mutation. The file is read once, lazily, on first
// access; from then on memory is authoritative and the file is a durability
// mirror. The mutex guards the collection against concurrent handlers;
// last-write-wins between separate processes sharing the file remains.
type JSONContactStore struct {
	path string

	mu       sync.Mutex
	loaded   bool
	contacts []models.Contact
}

func NewJSONContactStore(path string) *JSONContactStore {
	return &JSONContactStore{path: path}
}

// load is called with the mutex held.
func (s *JSONContactStore) load() error {
	if s.loaded {
		return nil
	}
	var doc contactsDocument
	if err := readDocument(s.path, &doc); err != nil {
		return err
	}
	s.contacts = doc.Contacts
	s.loaded = true
	return nil
}

// persist is called with the mutex held.
func (s *JSONContactStore) persist() error {
	return writeDocument(s.path, contactsDocument{Contacts: s.contacts})
}

func (s *JSONContactStore) GetAll(ctx context.Context) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}
	return append([]models.Contact(nil), s.contacts...), nil
}

func (s *JSONContactStore) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			c := s.contacts[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (s *JSONContactStore) GetByPhone(ctx context.Context, phone string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}
	for i := range s.contacts {
		if s.contacts[i].Phone == phone {
			c := s.contacts[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (s *JSONContactStore) Create(ctx context.Context, in models.CreateContactInput) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}
	ids := make([]string, len(s.contacts))
	for i := range s.contacts {
		ids[i] = s.contacts[i].ID
	}
	contact := models.Contact{
		ID:        nextID(ids),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now().UTC(),
	}
	s.contacts = append(s.contacts, contact)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *JSONContactStore) Update(ctx context.Context, id string, in models.UpdateContactInput) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return nil, err
	}
	for i := range s.contacts {
		if s.contacts[i].ID != id {
			continue
		}
		if in.Name != nil {
			s.contacts[i].Name = *in.Name
		}
		if in.Email != nil {
			s.contacts[i].Email = *in.Email
		}
		if in.Phone != nil {
			s.contacts[i].Phone = *in.Phone
		}
		if in.Address != nil {
			s.contacts[i].Address = *in.Address
		}
		if err := s.persist(); err != nil {
			return nil, err
		}
		c := s.contacts[i]
		return &c, nil
	}
	return nil, ErrNotFound
}

func (s *JSONContactStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return false, err
	}
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			if err := s.persist(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *JSONContactStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return 0, err
	}
	return len(s.contacts), nil
}

func (s *JSONContactStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var doc contactsDocument
	if err := readDocument(s.path, &doc); err != nil {
		return err
	}
	s.contacts = doc.Contacts
	s.loaded = true
	return nil
}

func (s *JSONContactStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = nil
	s.loaded = true
	return s.persist()
}
