package httpapi

import (
	"net/http"
	"strings"

	"repouso-data/internal/service"

	"go.uber.org/zap"
)

// UserHandler console-account endpoints. The router wraps these with
// RequireAdmin.
type UserHandler struct {
	users  service.UserService
	logger *zap.Logger
}

func NewUserHandler(users service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

const usersBasePath = "/admin/api/v1/users"

// ServeHTTP path-dispatches the user routes:
//
//	GET    /admin/api/v1/users
//	POST   /admin/api/v1/users
//	GET    /admin/api/v1/users/:id
//	PUT    /admin/api/v1/users/:id
//	DELETE /admin/api/v1/users/:id
func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == usersBasePath && r.Method == http.MethodGet:
		h.ListUsers(w, r)
	case path == usersBasePath && r.Method == http.MethodPost:
		h.CreateUser(w, r)
	case strings.HasPrefix(path, usersBasePath+"/"):
		userID := strings.TrimPrefix(path, usersBasePath+"/")
		if userID == "" || strings.Contains(userID, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.GetUser(w, r, userID)
		case http.MethodPut:
			h.UpdateUser(w, r, userID)
		case http.MethodDelete:
			h.DeleteUser(w, r, userID)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	items, err := h.users.ListUsers(r.Context())
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(items))
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request, userID string) {
	item, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(item))
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req service.UserInput
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
		return
	}
	id, err := h.users.CreateUser(r.Context(), req)
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"user_id": id}))
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request, userID string) {
	var req service.UserInput
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
		return
	}
	respondServiceErr(w, h.logger, h.users.UpdateUser(r.Context(), userID, req))
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request, userID string) {
	respondServiceErr(w, h.logger, h.users.DeleteUser(r.Context(), userID))
}
