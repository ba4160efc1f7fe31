package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"repouso-data/internal/repository"
	"repouso-data/internal/service"

	"go.uber.org/zap"
)

// ResidentHandler resident aggregate endpoints (resident + emergency
// contacts).
type ResidentHandler struct {
	residents service.ResidentService
	logger    *zap.Logger
}

func NewResidentHandler(residents service.ResidentService, logger *zap.Logger) *ResidentHandler {
	return &ResidentHandler{residents: residents, logger: logger}
}

const residentsBasePath = "/admin/api/v1/residents"

// ServeHTTP path-dispatches the resident routes:
//
//	GET    /admin/api/v1/residents
//	POST   /admin/api/v1/residents
//	GET    /admin/api/v1/residents/:id
//	PUT    /admin/api/v1/residents/:id
//	DELETE /admin/api/v1/residents/:id
//	GET    /admin/api/v1/residents/:id/contacts
//	POST   /admin/api/v1/residents/:id/contacts
func (h *ResidentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == residentsBasePath && r.Method == http.MethodGet:
		h.ListResidents(w, r)
	case path == residentsBasePath && r.Method == http.MethodPost:
		h.CreateResident(w, r)
	case strings.HasSuffix(path, "/contacts"):
		residentID := strings.TrimSuffix(path, "/contacts")
		residentID = strings.TrimPrefix(residentID, residentsBasePath+"/")
		if residentID == "" || strings.Contains(residentID, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.ListContacts(w, r, residentID)
		case http.MethodPost:
			h.CreateContact(w, r, residentID)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case strings.HasPrefix(path, residentsBasePath+"/"):
		residentID := strings.TrimPrefix(path, residentsBasePath+"/")
		if residentID == "" || strings.Contains(residentID, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.GetResident(w, r, residentID)
		case http.MethodPut:
			h.UpdateResident(w, r, residentID)
		case http.MethodDelete:
			h.DeleteResident(w, r, residentID)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// ServeContacts handles the contact-scoped routes:
//
//	PUT    /admin/api/v1/contacts/:id
//	DELETE /admin/api/v1/contacts/:id
func (h *ResidentHandler) ServeContacts(w http.ResponseWriter, r *http.Request) {
	contactID := strings.TrimPrefix(r.URL.Path, "/admin/api/v1/contacts/")
	if contactID == "" || strings.Contains(contactID, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req service.ContactInput
		if err := readBodyJSON(r, 1<<20, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
			return
		}
		h.respondErr(w, h.residents.UpdateContact(r.Context(), contactID, req))
	case http.MethodDelete:
		h.respondErr(w, h.residents.DeleteContact(r.Context(), contactID))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *ResidentHandler) ListResidents(w http.ResponseWriter, r *http.Request) {
	filters := repository.ResidentFilters{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}
	items, err := h.residents.ListResidents(r.Context(), filters)
	if err != nil {
		h.logger.Error("list residents failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("Erro ao listar residentes"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(items))
}

func (h *ResidentHandler) GetResident(w http.ResponseWriter, r *http.Request, residentID string) {
	detail, err := h.residents.GetResident(r.Context(), residentID)
	if err != nil {
		if service.IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, Fail("Residente não encontrado"))
			return
		}
		h.logger.Error("get resident failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("Erro ao carregar residente"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(detail))
}

func (h *ResidentHandler) CreateResident(w http.ResponseWriter, r *http.Request) {
	var req service.ResidentInput
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
		return
	}
	id, err := h.residents.CreateResident(r.Context(), req)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"resident_id": id}))
}

func (h *ResidentHandler) UpdateResident(w http.ResponseWriter, r *http.Request, residentID string) {
	var req service.ResidentInput
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
		return
	}
	h.respondErr(w, h.residents.UpdateResident(r.Context(), residentID, req))
}

func (h *ResidentHandler) DeleteResident(w http.ResponseWriter, r *http.Request, residentID string) {
	h.respondErr(w, h.residents.DeleteResident(r.Context(), residentID))
}

func (h *ResidentHandler) ListContacts(w http.ResponseWriter, r *http.Request, residentID string) {
	detail, err := h.residents.GetResident(r.Context(), residentID)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(detail.Contacts))
}

func (h *ResidentHandler) CreateContact(w http.ResponseWriter, r *http.Request, residentID string) {
	var req service.ContactInput
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
		return
	}
	id, err := h.residents.CreateContact(r.Context(), residentID, req)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"contact_id": id}))
}

// respondErr maps service errors onto the envelope; nil means plain ok.
func (h *ResidentHandler) respondErr(w http.ResponseWriter, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, Ok[any](nil))
		return
	}
	var v *service.ErrValidation
	if errors.As(err, &v) {
		writeJSON(w, http.StatusBadRequest, Fail(v.Message))
		return
	}
	if service.IsNotFound(err) {
		writeJSON(w, http.StatusNotFound, Fail("Registro não encontrado"))
		return
	}
	h.logger.Error("resident request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, Fail("Erro interno"))
}
