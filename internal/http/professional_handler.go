package httpapi

import (
	"net/http"
	"strings"

	"repouso-data/internal/repository"
	"repouso-data/internal/service"

	"go.uber.org/zap"
)

// ProfessionalHandler staff endpoints: professionals, the profession
// catalog and weekly work schedules.
type ProfessionalHandler struct {
	professionals service.ProfessionalService
	schedules     service.ScheduleService
	logger        *zap.Logger
}

func NewProfessionalHandler(professionals service.ProfessionalService, schedules service.ScheduleService, logger *zap.Logger) *ProfessionalHandler {
	return &ProfessionalHandler{professionals: professionals, schedules: schedules, logger: logger}
}

const professionalsBasePath = "/admin/api/v1/professionals"

// ServeHTTP path-dispatches the professional routes:
//
//	GET    /admin/api/v1/professionals
//	POST   /admin/api/v1/professionals
//	GET    /admin/api/v1/professionals/:id
//	PUT    /admin/api/v1/professionals/:id
//	DELETE /admin/api/v1/professionals/:id
//	GET    /admin/api/v1/professionals/:id/schedules
//	POST   /admin/api/v1/professionals/:id/schedules
func (h *ProfessionalHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == professionalsBasePath && r.Method == http.MethodGet:
		h.ListProfessionals(w, r)
	case path == professionalsBasePath && r.Method == http.MethodPost:
		h.CreateProfessional(w, r)
	case strings.HasSuffix(path, "/schedules"):
		professionalID := strings.TrimSuffix(path, "/schedules")
		professionalID = strings.TrimPrefix(professionalID, professionalsBasePath+"/")
		if professionalID == "" || strings.Contains(professionalID, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.ListSchedules(w, r, professionalID)
		case http.MethodPost:
			h.CreateSchedule(w, r, professionalID)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case strings.HasPrefix(path, professionalsBasePath+"/"):
		professionalID := strings.TrimPrefix(path, professionalsBasePath+"/")
		if professionalID == "" || strings.Contains(professionalID, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.GetProfessional(w, r, professionalID)
		case http.MethodPut:
			h.UpdateProfessional(w, r, professionalID)
		case http.MethodDelete:
			h.DeleteProfessional(w, r, professionalID)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// ServeProfessions handles the profession-catalog routes:
//
//	GET    /admin/api/v1/professions
//	POST   /admin/api/v1/professions
//	DELETE /admin/api/v1/professions/:id
func (h *ProfessionalHandler) ServeProfessions(w http.ResponseWriter, r *http.Request) {
	const base = "/admin/api/v1/professions"
	path := r.URL.Path
	switch {
	case path == base && r.Method == http.MethodGet:
		h.ListProfessions(w, r)
	case path == base && r.Method == http.MethodPost:
		h.CreateProfession(w, r)
	case strings.HasPrefix(path, base+"/") && r.Method == http.MethodDelete:
		professionID := strings.TrimPrefix(path, base+"/")
		if professionID == "" || strings.Contains(professionID, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		respondServiceErr(w, h.logger, h.professionals.DeleteProfession(r.Context(), professionID))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// ServeSchedules handles the schedule-scoped routes:
//
//	PUT    /admin/api/v1/schedules/:id
//	DELETE /admin/api/v1/schedules/:id
func (h *ProfessionalHandler) ServeSchedules(w http.ResponseWriter, r *http.Request) {
	const base = "/admin/api/v1/schedules"
	scheduleID := strings.TrimPrefix(r.URL.Path, base+"/")
	if scheduleID == "" || scheduleID == r.URL.Path || strings.Contains(scheduleID, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	switch r.Method {
	case http.MethodPut:
		h.UpdateSchedule(w, r, scheduleID)
	case http.MethodDelete:
		respondServiceErr(w, h.logger, h.schedules.DeleteSchedule(r.Context(), scheduleID))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// ---- professionals ----

func (h *ProfessionalHandler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	filters := repository.ProfessionalFilters{
		Status:       r.URL.Query().Get("status"),
		ProfessionID: r.URL.Query().Get("profession_id"),
		Search:       r.URL.Query().Get("search"),
	}
	items, err := h.professionals.ListProfessionals(r.Context(), filters)
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(items))
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request, professionalID string) {
	item, err := h.professionals.GetProfessional(r.Context(), professionalID)
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(item))
}

func (h *ProfessionalHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req service.ProfessionalInput
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
		return
	}
	id, err := h.professionals.CreateProfessional(r.Context(), req)
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"professional_id": id}))
}

func (h *ProfessionalHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request, professionalID string) {
	var req service.ProfessionalInput
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
		return
	}
	respondServiceErr(w, h.logger, h.professionals.UpdateProfessional(r.Context(), professionalID, req))
}

func (h *ProfessionalHandler) DeleteProfessional(w http.ResponseWriter, r *http.Request, professionalID string) {
	respondServiceErr(w, h.logger, h.professionals.DeleteProfessional(r.Context(), professionalID))
}

// ---- professions ----

func (h *ProfessionalHandler) ListProfessions(w http.ResponseWriter, r *http.Request) {
	items, err := h.professionals.ListProfessions(r.Context())
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(items))
}

type professionRequest struct {
	Name string `json:"name"`
}

func (h *ProfessionalHandler) CreateProfession(w http.ResponseWriter, r *http.Request) {
	var req professionRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
		return
	}
	id, err := h.professionals.CreateProfession(r.Context(), req.Name)
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"profession_id": id}))
}

// ---- schedules ----

func (h *ProfessionalHandler) ListSchedules(w http.ResponseWriter, r *http.Request, professionalID string) {
	items, err := h.schedules.ListSchedules(r.Context(), professionalID)
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(items))
}

func (h *ProfessionalHandler) CreateSchedule(w http.ResponseWriter, r *http.Request, professionalID string) {
	var req service.ScheduleInput
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
		return
	}
	req.ProfessionalID = professionalID
	id, err := h.schedules.CreateSchedule(r.Context(), req)
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"schedule_id": id}))
}

func (h *ProfessionalHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request, scheduleID string) {
	var req service.ScheduleInput
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
		return
	}
	respondServiceErr(w, h.logger, h.schedules.UpdateSchedule(r.Context(), scheduleID, req))
}
