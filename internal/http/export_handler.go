package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"repouso-data/internal/repository"
	"repouso-data/internal/service"

	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler XLSX download endpoints.
type ExportHandler struct {
	exports service.ExportService
	logger  *zap.Logger
}

func NewExportHandler(exports service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{exports: exports, logger: logger}
}

// ServeHTTP path-dispatches the export routes:
//
//	GET /admin/api/v1/export/evolutions
//	GET /admin/api/v1/export/residents
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/admin/api/v1/export/evolutions":
		h.ExportEvolutions(w, r)
	case "/admin/api/v1/export/residents":
		h.ExportResidents(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *ExportHandler) ExportEvolutions(w http.ResponseWriter, r *http.Request) {
	filters := repository.EvolutionFilters{
		ResidentID: r.URL.Query().Get("resident_id"),
		Date:       r.URL.Query().Get("date"),
	}
	data, err := h.exports.EvolutionsXLSX(r.Context(), filters)
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	h.sendXLSX(w, "evolucoes", data)
}

func (h *ExportHandler) ExportResidents(w http.ResponseWriter, r *http.Request) {
	data, err := h.exports.ResidentsXLSX(r.Context())
	if err != nil {
		respondServiceErr(w, h.logger, err)
		return
	}
	h.sendXLSX(w, "residentes", data)
}

func (h *ExportHandler) sendXLSX(w http.ResponseWriter, prefix string, data []byte) {
	filename := fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("export download aborted", zap.Error(err))
	}
}
