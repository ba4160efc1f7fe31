package httpapi

import (
	"errors"
	"net/http"

	"repouso-data/internal/service"
	"repouso-data/internal/wizard"

	"go.uber.org/zap"
)

// respondServiceErr shared error-to-envelope mapping; nil responds ok.
func respondServiceErr(w http.ResponseWriter, logger *zap.Logger, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, Ok[any](nil))
		return
	}
	var v *service.ErrValidation
	if errors.As(err, &v) {
		writeJSON(w, http.StatusBadRequest, Fail(v.Message))
		return
	}
	var wv *wizard.ValidationError
	if errors.As(err, &wv) {
		writeJSON(w, http.StatusBadRequest, Fail(wv.Reason))
		return
	}
	if service.IsNotFound(err) {
		writeJSON(w, http.StatusNotFound, Fail("Registro não encontrado"))
		return
	}
	logger.Error("request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, Fail("Erro interno"))
}
