package httpapi

import (
	"errors"
	"net/http"

	"repouso-data/internal/service"

	"go.uber.org/zap"
)

// AuthHandler login/logout and session echo.
type AuthHandler struct {
	auth   service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string           `json:"token"`
	Session *service.Session `json:"session"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
		return
	}
	token, session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, Fail("E-mail ou senha incorretos"))
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("Erro ao efetuar login"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(loginResponse{Token: token, Session: session}))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), bearerToken(r)); err != nil {
		h.logger.Warn("logout failed", zap.Error(err))
	}
	writeJSON(w, http.StatusOK, Ok[any](nil))
}

// Me echoes the authenticated session (behind the auth middleware).
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := service.SessionFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Fail("Sessão inválida"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(session))
}
