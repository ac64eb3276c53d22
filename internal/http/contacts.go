package http

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"contacthub/internal/models"
	"contacthub/internal/service"
	"contacthub/shared/middleware"
)

type ContactHandler struct {
	contacts *service.ContactService
	tasks    *service.TaskService
	logger   *logrus.Logger
}

// NewContactHandler takes both services: deleting a contact cascades to its
// tasks here, at the boundary, because the contact service deliberately has
// no dependency on the task service.
func NewContactHandler(contacts *service.ContactService, tasks *service.TaskService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, tasks: tasks, logger: logger}
}

func (h *ContactHandler) entry(r *http.Request, handler string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"component":  "http_handler",
		"handler":    handler,
		"request_id": middleware.GetRequestID(r.Context()),
	})
}

// List handles GET /contacts with optional search, sortBy and order params.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	logEntry := h.entry(r, "ListContacts")

	contacts, err := h.contacts.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	if sortBy := r.URL.Query().Get("sortBy"); sortBy != "" {
		contacts = h.contacts.Sort(contacts, sortBy, r.URL.Query().Get("order"))
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	logEntry.WithField("count", len(contacts)).Debug("contacts listed")
	writeList(w, contacts, len(contacts))
}

// Get handles GET /contacts/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	logEntry := h.entry(r, "GetContact")

	id := r.PathValue("id")
	contact, err := h.contacts.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	if contact == nil {
		logEntry.WithField("contact_id", id).Warn("contact not found")
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	writeData(w, http.StatusOK, contact)
}

// Create handles POST /contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	logEntry := h.entry(r, "CreateContact")

	var in models.CreateContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	contact, err := h.contacts.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	logEntry.WithField("contact_id", contact.ID).Info("contact created")
	writeData(w, http.StatusCreated, contact)
}

// Update handles PUT /contacts/{id} with a partial body.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	logEntry := h.entry(r, "UpdateContact")

	id := r.PathValue("id")
	var in models.UpdateContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	contact, err := h.contacts.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	logEntry.WithField("contact_id", id).Info("contact updated")
	writeData(w, http.StatusOK, contact)
}

// Delete handles DELETE /contacts/{id} and cascades to the contact's tasks.
// The two writes are not atomic; a crash in between leaves orphaned tasks.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logEntry := h.entry(r, "DeleteContact")

	id := r.PathValue("id")
	deleted, err := h.contacts.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	removed, err := h.tasks.DeleteByContactID(r.Context(), id)
	if err != nil {
		writeServiceError(w, logEntry, err)
		return
	}
	logEntry.WithFields(logrus.Fields{
		"contact_id":    id,
		"tasks_removed": removed,
	}).Info("contact deleted")
	writeData(w, http.StatusOK, deleted)
}
