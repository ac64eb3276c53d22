package service

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacthub/internal/models"
	"contacthub/internal/store"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newContactService(t *testing.T) *ContactService {
	t.Helper()
	st := store.NewJSONContactStore(filepath.Join(t.TempDir(), "contacts.json"))
	return NewContactService(st, testLogger())
}

func annLee() models.CreateContactInput {
	return models.CreateContactInput{
		Name:    "Ann Lee",
		Email:   "a@b.com",
		Phone:   "555-0001",
		Address: "1 Main Street",
	}
}

func TestCreateContact(t *testing.T) {
	svc := newContactService(t)

	contact, err := svc.Create(context.Background(), annLee())
	require.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "Ann Lee", contact.Name)
	assert.False(t, contact.CreatedAt.IsZero())
}

func TestCreateContactRejectsInvalidInput(t *testing.T) {
	svc := newContactService(t)

	in := annLee()
	in.Email = "not-an-email"
	in.Phone = "123"
	_, err := svc.Create(context.Background(), in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	assert.Equal(t, "Validation failed: email: must be a valid email address; phone: must be exactly 8 characters", verr.Error())
}

func TestCreateContactRejectsDuplicatePhone(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, annLee())
	require.NoError(t, err)

	dup := annLee()
	dup.Name = "Bea Ray"
	dup.Email = "b@c.com"
	_, err = svc.Create(ctx, dup)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "phone", verr.Fields[0].Field)
	assert.Equal(t, "Validation failed: phone: already exists", verr.Error())
}

func TestUpdateContactPhoneUniqueness(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, annLee())
	require.NoError(t, err)

	second := annLee()
	second.Phone = "555-0002"
	other, err := svc.Create(ctx, second)
	require.NoError(t, err)

	// Taking another contact's phone is rejected.
	phone := first.Phone
	_, err = svc.Update(ctx, other.ID, models.UpdateContactInput{Phone: &phone})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Fields[0].Field)

	// Re-submitting your own phone is fine.
	own := other.Phone
	updated, err := svc.Update(ctx, other.ID, models.UpdateContactInput{Phone: &own})
	require.NoError(t, err)
	assert.Equal(t, other.Phone, updated.Phone)
}

func TestUpdateContactNotFound(t *testing.T) {
	svc := newContactService(t)
	name := "Bea Ray"
	_, err := svc.Update(context.Background(), "42", models.UpdateContactInput{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteContactNotFound(t *testing.T) {
	svc := newContactService(t)
	_, err := svc.Delete(context.Background(), "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDBlankIsInvalidArgument(t *testing.T) {
	svc := newContactService(t)
	_, err := svc.GetByID(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetByIDMissingIsNotAnError(t *testing.T) {
	svc := newContactService(t)
	contact, err := svc.GetByID(context.Background(), "42")
	require.NoError(t, err)
	assert.Nil(t, contact)
}

func TestSearchContacts(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	ann := annLee()
	_, err := svc.Create(ctx, ann)
	require.NoError(t, err)

	bea := models.CreateContactInput{
		Name:    "Bea Ray",
		Email:   "bea@example.com",
		Phone:   "555-0002",
		Address: "2 Side Street",
	}
	_, err = svc.Create(ctx, bea)
	require.NoError(t, err)

	all, err := svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, all, 2, "blank query degrades to get-all")

	byName, err := svc.Search(ctx, "ANN")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Ann Lee", byName[0].Name)

	byEmail, err := svc.Search(ctx, "example.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Bea Ray", byEmail[0].Name)

	none, err := svc.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSortContactsDoesNotMutateInput(t *testing.T) {
	svc := newContactService(t)

	contacts := []models.Contact{
		{ID: "1", Name: "zoe", Email: "z@x.com", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Ann", Email: "a@x.com", CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Name: "bea", Email: "b@x.com", CreatedAt: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
	}
	original := append([]models.Contact(nil), contacts...)

	byName := svc.Sort(contacts, "name", "asc")
	assert.Equal(t, []string{"2", "3", "1"}, ids(byName), "case-insensitive name sort")

	byNameDesc := svc.Sort(contacts, "name", "desc")
	assert.Equal(t, []string{"1", "3", "2"}, ids(byNameDesc))

	byCreated := svc.Sort(contacts, "createdAt", "asc")
	assert.Equal(t, []string{"3", "1", "2"}, ids(byCreated))

	byEmail := svc.Sort(contacts, "email", "desc")
	assert.Equal(t, []string{"1", "3", "2"}, ids(byEmail))

	assert.Equal(t, original, contacts, "input slice is never mutated")
}

func ids(contacts []models.Contact) []string {
	out := make([]string, len(contacts))
	for i, c := range contacts {
		out[i] = c.ID
	}
	return out
}

func TestContactCount(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = svc.Create(ctx, annLee())
	require.NoError(t, err)

	count, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
