package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps the standard library ServeMux; handlers do their own
// sub-path dispatching, so registration stays at the prefix level.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterAuthRoutes login/logout and the session echo used by the
// console shell.
func (r *Router) RegisterAuthRoutes(h *AuthHandler, m *AuthMiddleware) {
	r.Handle("/admin/api/v1/auth/login", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Login(w, req)
	})
	r.Handle("/admin/api/v1/auth/logout", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Logout(w, req)
	})
	r.Handle("/admin/api/v1/auth/me", m.Require(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.Me(w, req)
	}))
}

// RegisterResidentRoutes residents plus emergency contacts.
func (r *Router) RegisterResidentRoutes(h *ResidentHandler, m *AuthMiddleware) {
	r.Handle("/admin/api/v1/residents", m.Require(h.ServeHTTP))
	r.Handle("/admin/api/v1/residents/", m.Require(h.ServeHTTP))
	r.Handle("/admin/api/v1/contacts/", m.Require(h.ServeContacts))
}

// RegisterEvolutionRoutes listing, schema and the wizard session
// endpoints.
func (r *Router) RegisterEvolutionRoutes(h *EvolutionHandler, m *AuthMiddleware) {
	r.Handle("/admin/api/v1/evolutions", m.Require(h.ServeHTTP))
	r.Handle("/admin/api/v1/evolutions/", m.Require(h.ServeHTTP))
}

// RegisterProfessionalRoutes professionals, the profession catalog and
// work schedules.
func (r *Router) RegisterProfessionalRoutes(h *ProfessionalHandler, m *AuthMiddleware) {
	r.Handle("/admin/api/v1/professionals", m.Require(h.ServeHTTP))
	r.Handle("/admin/api/v1/professionals/", m.Require(h.ServeHTTP))
	r.Handle("/admin/api/v1/professions", m.Require(h.ServeProfessions))
	r.Handle("/admin/api/v1/professions/", m.Require(h.ServeProfessions))
	r.Handle("/admin/api/v1/schedules/", m.Require(h.ServeSchedules))
}

// RegisterUserRoutes account management, admin only.
func (r *Router) RegisterUserRoutes(h *UserHandler, m *AuthMiddleware) {
	r.Handle("/admin/api/v1/users", m.RequireAdmin(h.ServeHTTP))
	r.Handle("/admin/api/v1/users/", m.RequireAdmin(h.ServeHTTP))
}

// RegisterExportRoutes XLSX downloads.
func (r *Router) RegisterExportRoutes(h *ExportHandler, m *AuthMiddleware) {
	r.Handle("/admin/api/v1/export/", m.Require(h.ServeHTTP))
}
