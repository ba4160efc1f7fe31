package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"repouso-data/internal/repository"
	"repouso-data/internal/schema"
	"repouso-data/internal/service"
	"repouso-data/internal/wizard"

	"go.uber.org/zap"
)

// EvolutionHandler care-log listing/deletion plus the multi-step
// wizard session endpoints.
type EvolutionHandler struct {
	evolutions service.EvolutionService
	wizards    *wizard.Manager
	catalog    *schema.Catalog
	logger     *zap.Logger
}

func NewEvolutionHandler(evolutions service.EvolutionService, wizards *wizard.Manager, catalog *schema.Catalog, logger *zap.Logger) *EvolutionHandler {
	return &EvolutionHandler{
		evolutions: evolutions,
		wizards:    wizards,
		catalog:    catalog,
		logger:     logger,
	}
}

const (
	evolutionsBasePath = "/admin/api/v1/evolutions"
	wizardBasePath     = "/admin/api/v1/evolutions/wizard"
)

// ServeHTTP path-dispatches the evolution routes:
//
//	GET    /admin/api/v1/evolutions
//	GET    /admin/api/v1/evolutions/schema
//	POST   /admin/api/v1/evolutions/wizard
//	GET    /admin/api/v1/evolutions/wizard/:handle
//	PUT    /admin/api/v1/evolutions/wizard/:handle/basic-info
//	POST   /admin/api/v1/evolutions/wizard/:handle/input
//	POST   /admin/api/v1/evolutions/wizard/:handle/next
//	POST   /admin/api/v1/evolutions/wizard/:handle/prev
//	DELETE /admin/api/v1/evolutions/wizard/:handle
//	GET    /admin/api/v1/evolutions/:id
//	DELETE /admin/api/v1/evolutions/:id
func (h *EvolutionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == evolutionsBasePath && r.Method == http.MethodGet:
		h.ListEvolutions(w, r)
	case path == evolutionsBasePath+"/schema" && r.Method == http.MethodGet:
		h.GetSchema(w, r)
	case path == wizardBasePath && r.Method == http.MethodPost:
		h.OpenWizard(w, r)
	case strings.HasPrefix(path, wizardBasePath+"/"):
		h.serveWizard(w, r, strings.TrimPrefix(path, wizardBasePath+"/"))
	case strings.HasPrefix(path, evolutionsBasePath+"/"):
		evolutionID := strings.TrimPrefix(path, evolutionsBasePath+"/")
		if evolutionID == "" || strings.Contains(evolutionID, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			h.GetEvolution(w, r, evolutionID)
		case http.MethodDelete:
			h.DeleteEvolution(w, r, evolutionID)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// ---- listing / deletion ----

func (h *EvolutionHandler) ListEvolutions(w http.ResponseWriter, r *http.Request) {
	filters := repository.EvolutionFilters{
		ResidentID: r.URL.Query().Get("resident_id"),
		Date:       r.URL.Query().Get("date"),
	}
	items, err := h.evolutions.ListEvolutions(r.Context(), filters)
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(items))
}

func (h *EvolutionHandler) GetEvolution(w http.ResponseWriter, r *http.Request, evolutionID string) {
	item, err := h.evolutions.GetEvolution(r.Context(), evolutionID)
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(item))
}

func (h *EvolutionHandler) DeleteEvolution(w http.ResponseWriter, r *http.Request, evolutionID string) {
	respondServiceErr(w, h.logger, h.evolutions.DeleteEvolution(r.Context(), evolutionID))
}

// ---- schema ----

type schemaResponse struct {
	Steps      []schema.Step     `json:"steps"`
	Categories []schema.Category `json:"categories"`
}

func (h *EvolutionHandler) GetSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Ok(schemaResponse{
		Steps:      schema.Steps,
		Categories: h.catalog.ListAll(),
	}))
}

// ---- wizard session ----

type wizardView struct {
	Handle            string             `json:"handle"`
	StepIndex         int                `json:"step_index"`
	StepCount         int                `json:"step_count"`
	Step              schema.Step        `json:"step"`
	BasicInfo         wizard.BasicInfo   `json:"basic_info"`
	BasicInfoComplete bool               `json:"basic_info_complete"`
	Fields            []wizard.FieldView `json:"fields"`
	Submitting        bool               `json:"submitting"`
	Finished          bool               `json:"finished"`
}

func (h *EvolutionHandler) wizardView(handle string, sess *wizard.Session) wizardView {
	st := sess.Snapshot()
	return wizardView{
		Handle:            handle,
		StepIndex:         st.StepIndex,
		StepCount:         schema.StepCount(),
		Step:              schema.Steps[st.StepIndex],
		BasicInfo:         st.BasicInfo,
		BasicInfoComplete: st.BasicInfoComplete(),
		Fields:            wizard.StepView(h.catalog, &st, st.StepIndex),
		Submitting:        st.Submitting,
		Finished:          sess.Finished(),
	}
}

func (h *EvolutionHandler) OpenWizard(w http.ResponseWriter, _ *http.Request) {
	handle, sess := h.wizards.Open(nil)
	writeJSON(w, http.StatusOK, Ok(h.wizardView(handle, sess)))
}

type basicInfoRequest struct {
	ResidentID string `json:"resident_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Systolic   string `json:"systolic"`
	Diastolic  string `json:"diastolic"`
}

type inputRequest struct {
	CategoryID string `json:"category_id"`
	Str        string `json:"str"`
	Bool       bool   `json:"bool"`
	Rating     int    `json:"rating"`
}

func (h *EvolutionHandler) serveWizard(w http.ResponseWriter, r *http.Request, rest string) {
	handle := rest
	action := ""
	if i := strings.Index(rest, "/"); i >= 0 {
		handle, action = rest[:i], rest[i+1:]
	}
	sess, ok := h.wizards.Get(handle)
	if !ok {
		writeJSON(w, http.StatusNotFound, Fail("Sessão do formulário não encontrada"))
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, Ok(h.wizardView(handle, sess)))
	case action == "" && r.Method == http.MethodDelete:
		if err := h.wizards.Cancel(handle); err != nil {
			writeJSON(w, http.StatusConflict, Fail("Aguarde o envio em andamento"))
			return
		}
		writeJSON(w, http.StatusOK, Ok[any](nil))
	case action == "basic-info" && r.Method == http.MethodPut:
		var req basicInfoRequest
		if err := readBodyJSON(r, 1<<20, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
			return
		}
		err := sess.Edit(func(st *wizard.State) {
			st.SetResident(req.ResidentID)
			st.SetDate(req.Date)
			st.SetTime(req.Time)
			st.SetSystolic(req.Systolic)
			st.SetDiastolic(req.Diastolic)
		})
		h.respondWizard(w, handle, sess, err)
	case action == "input" && r.Method == http.MethodPost:
		var req inputRequest
		if err := readBodyJSON(r, 1<<20, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("Requisição inválida"))
			return
		}
		err := sess.ApplyInput(req.CategoryID, wizard.Input{
			Str:    req.Str,
			Bool:   req.Bool,
			Rating: req.Rating,
		})
		h.respondWizard(w, handle, sess, err)
	case action == "next" && r.Method == http.MethodPost:
		h.respondWizard(w, handle, sess, sess.Next(r.Context()))
	case action == "prev" && r.Method == http.MethodPost:
		sess.Prev()
		h.respondWizard(w, handle, sess, nil)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *EvolutionHandler) respondWizard(w http.ResponseWriter, handle string, sess *wizard.Session, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, Ok(h.wizardView(handle, sess)))
		return
	}
	var v *wizard.ValidationError
	switch {
	case errors.As(err, &v):
		writeJSON(w, http.StatusBadRequest, Fail(v.Reason))
	case errors.Is(err, wizard.ErrNoIdentity):
		writeJSON(w, http.StatusUnauthorized, Fail(err.Error()))
	case errors.Is(err, wizard.ErrBusy):
		writeJSON(w, http.StatusConflict, Fail("Aguarde o envio em andamento"))
	default:
		// persistence failure: state is preserved, the user retries
		h.logger.Warn("wizard submit failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail("Não foi possível salvar a evolução, tente novamente"))
	}
}
