package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"contacthub/internal/models"
	"contacthub/internal/service"
	"contacthub/shared/middleware"
)

type TaskHandler struct {
	tasks  *service.TaskService
	logger *logrus.Logger
}

func NewTaskHandler(tasks *service.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, logger: logger}
}

func (h *TaskHandler) entry(r *http.Request, handler string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"component":  "http_handler",
		"handler":    handler,
		"request_id": middleware.GetRequestID(r.Context()),
	})
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

// taskForContact resolves a task and enforces that it belongs to the contact
// named in the path.
func (h *TaskHandler) taskForContact(r *http.Request) (*models.Task, error) {
	contactID := r.PathValue("contactId")
	taskID := r.PathValue("taskId")
	task, err := h.tasks.GetByID(r.Context(), taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, service.ErrNotFound)
	}
	if task.ContactID != contactID {
		return nil, fmt.Errorf("task %s: %w", taskID, service.ErrOwnershipMismatch)
	}
	return task, nil
}

// ListByContact handles GET /contacts/{contactId}/tasks.
func (h *TaskHandler) ListByContact(w http.ResponseWriter, r *http.Request) {
	logEntry := h.entry(r, "ListTasks")

	tasks, err := h.tasks.GetByContactID(r.Context(), r.PathValue("contactId"))
	if err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	logEntry.WithField("count", len(tasks)).Debug("tasks listed")
	writeList(w, tasks, len(tasks))
}

// Create handles POST /contacts/{contactId}/tasks; the contact id comes from
// the path, never the body.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	logEntry := h.entry(r, "CreateTask")

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	task, err := h.tasks.Create(r.Context(), models.CreateTaskInput{
		ContactID:   r.PathValue("contactId"),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	logEntry.WithField("task_id", task.ID).Info("task created")
	writeData(w, http.StatusCreated, task)
}

// Update handles PUT /contacts/{contactId}/tasks/{taskId} with a partial body.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	logEntry := h.entry(r, "UpdateTask")

	if _, err := h.taskForContact(r); err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	var in models.UpdateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	task, err := h.tasks.Update(r.Context(), r.PathValue("taskId"), in)
	if err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	logEntry.WithField("task_id", task.ID).Info("task updated")
	writeData(w, http.StatusOK, task)
}

// Toggle handles PATCH /contacts/{contactId}/tasks/{taskId} (no body).
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	logEntry := h.entry(r, "ToggleTask")

	if _, err := h.taskForContact(r); err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	task, err := h.tasks.Toggle(r.Context(), r.PathValue("taskId"))
	if err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	logEntry.WithFields(logrus.Fields{
		"task_id":   task.ID,
		"completed": task.Completed,
	}).Info("task toggled")
	writeData(w, http.StatusOK, task)
}

// Delete handles DELETE /contacts/{contactId}/tasks/{taskId}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logEntry := h.entry(r, "DeleteTask")

	if _, err := h.taskForContact(r); err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	deleted, err := h.tasks.Delete(r.Context(), r.PathValue("taskId"))
	if err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	logEntry.WithField("task_id", r.PathValue("taskId")).Info("task deleted")
	writeData(w, http.StatusOK, deleted)
}
