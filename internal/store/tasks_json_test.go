package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacthub/internal/models"
)

func newTaskStore(t *testing.T) (*JSONTaskStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	return NewJSONTaskStore(path), path
}

func taskInput(contactID, title string) models.CreateTaskInput {
	return models.CreateTaskInput{ContactID: contactID, Title: title}
}

func TestTaskCreateDefaults(t *testing.T) {
	s, _ := newTaskStore(t)

	task, err := s.Create(context.Background(), taskInput("1", "Call back"))
	require.NoError(t, err)
	assert.Equal(t, "1", task.ID)
	assert.False(t, task.Completed)
	assert.True(t, task.CreatedAt.Equal(task.UpdatedAt))
	assert.Empty(t, task.Description)
	assert.Empty(t, task.DueDate)
}

func TestTaskToggleFlipsAndRefreshesUpdatedAt(t *testing.T) {
	s, _ := newTaskStore(t)
	ctx := context.Background()

	task, err := s.Create(ctx, taskInput("1", "Call back"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	toggled, err := s.Toggle(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.True(t, toggled.UpdatedAt.After(task.CreatedAt))

	back, err := s.Toggle(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, back.Completed)
}

func TestTaskEmptyUpdateStillRefreshesUpdatedAt(t *testing.T) {
	s, _ := newTaskStore(t)
	ctx := context.Background()

	task, err := s.Create(ctx, taskInput("1", "Call back"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := s.Update(ctx, task.ID, models.UpdateTaskInput{})
	require.NoError(t, err)
	assert.Equal(t, task.Title, updated.Title)
	assert.Equal(t, task.Description, updated.Description)
	assert.Equal(t, task.DueDate, updated.DueDate)
	assert.Equal(t, task.Completed, updated.Completed)
	assert.True(t, updated.UpdatedAt.After(task.UpdatedAt))
}

func TestTaskUpdateMissingReturnsErrNotFound(t *testing.T) {
	s, _ := newTaskStore(t)
	_, err := s.Update(context.Background(), "42", models.UpdateTaskInput{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Toggle(context.Background(), "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskGetByContactID(t *testing.T) {
	s, _ := newTaskStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, taskInput("1", "First"))
	require.NoError(t, err)
	_, err = s.Create(ctx, taskInput("2", "Other"))
	require.NoError(t, err)
	_, err = s.Create(ctx, taskInput("1", "Second"))
	require.NoError(t, err)

	tasks, err := s.GetByContactID(ctx, "1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "First", tasks[0].Title)
	assert.Equal(t, "Second", tasks[1].Title)

	none, err := s.GetByContactID(ctx, "99")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTaskDeleteByContactID(t *testing.T) {
	s, _ := newTaskStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, taskInput("1", "First"))
	require.NoError(t, err)
	_, err = s.Create(ctx, taskInput("1", "Second"))
	require.NoError(t, err)
	_, err = s.Create(ctx, taskInput("2", "Keep"))
	require.NoError(t, err)

	removed, err := s.DeleteByContactID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Keep", remaining[0].Title)
}

func TestTaskDeleteByContactIDNoMatchWritesNothing(t *testing.T) {
	s, path := newTaskStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, taskInput("1", "First"))
	require.NoError(t, err)

	// Remove the backing file: a zero-count cascade must not write it back.
	require.NoError(t, os.Remove(path))

	removed, err := s.DeleteByContactID(ctx, "99")
	require.NoError(t, err)
	assert.Zero(t, removed)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no persist should happen when nothing was removed")
}

func TestTaskRoundTrip(t *testing.T) {
	s, path := newTaskStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, models.CreateTaskInput{
		ContactID:   "1",
		Title:       "Call back",
		Description: "before lunch",
		DueDate:     "2099-12-31",
	})
	require.NoError(t, err)

	reloaded := NewJSONTaskStore(path)
	tasks, err := reloaded.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, *created, tasks[0])
}
