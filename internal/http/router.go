package http

import "net/http"

// NewRouter registers every route on a fresh mux. Middleware is layered on
// top by the caller.
func NewRouter(contacts *ContactHandler, tasks *TaskHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /contacts", contacts.List)
	mux.HandleFunc("POST /contacts", contacts.Create)
	mux.HandleFunc("GET /contacts/{id}", contacts.Get)
	mux.HandleFunc("PUT /contacts/{id}", contacts.Update)
	mux.HandleFunc("DELETE /contacts/{id}", contacts.Delete)

	mux.HandleFunc("GET /contacts/{contactId}/tasks", tasks.ListByContact)
	mux.HandleFunc("POST /contacts/{contactId}/tasks", tasks.Create)
	mux.HandleFunc("PUT /contacts/{contactId}/tasks/{taskId}", tasks.Update)
	mux.HandleFunc("PATCH /contacts/{contactId}/tasks/{taskId}", tasks.Toggle)
	mux.HandleFunc("DELETE /contacts/{contactId}/tasks/{taskId}", tasks.Delete)

	mux.HandleFunc("GET /healthz", Health)

	return mux
}

// Health handles GET /healthz.
func Health(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}
