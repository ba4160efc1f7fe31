package httpapi

import (
	"net/http"
	"strings"

	"repouso-data/internal/domain"
	"repouso-data/internal/service"

	"go.uber.org/zap"
)

// AuthMiddleware resolves the bearer token into a session and attaches
// it to the request context. Requests without a valid session get a 401
// with the token-expired code the front end watches for.
type AuthMiddleware struct {
	auth   service.AuthService
	logger *zap.Logger
}

func NewAuthMiddleware(auth service.AuthService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, logger: logger}
}

func (m *AuthMiddleware) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := m.auth.Resolve(r.Context(), bearerToken(r))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, Result[any]{
				Code:    ResultTokenExpired,
				Type:    "error",
				Message: "Sessão expirada, faça login novamente",
			})
			return
		}
		next(w, r.WithContext(service.WithSession(r.Context(), session)))
	}
}

// RequireAdmin gates user management to the admin role.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.Require(func(w http.ResponseWriter, r *http.Request) {
		session, _ := service.SessionFrom(r.Context())
		if session.Role != domain.RoleAdmin {
			writeJSON(w, http.StatusForbidden, Fail("Acesso restrito ao administrador"))
			return
		}
		next(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
