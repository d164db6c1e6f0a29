package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/syrineTissaoui/recalammation/internal/repository"
	"github.com/syrineTissaoui/recalammation/internal/service"
	"github.com/syrineTissaoui/recalammation/internal/utils"
)

// writeError translates workflow and store errors into response codes.
// Unexpected errors get a generic body; the detail stays in the log.
func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var ite *service.InvalidTransitionError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &ite):
		utils.Error(w, http.StatusBadRequest, ite.Error())
	case errors.Is(err, service.ErrForbidden):
		utils.Error(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, repository.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrConflict):
		utils.Error(w, http.StatusConflict, "conflict, retry")
	case errors.Is(err, repository.ErrDuplicateEmail):
		utils.Error(w, http.StatusConflict, "email already registered")
	case errors.Is(err, repository.ErrUnavailable):
		utils.Error(w, http.StatusServiceUnavailable, "service unavailable")
	default:
		log.Error().Err(err).Msg("request failed")
		utils.Error(w, http.StatusInternalServerError, "internal error")
	}
}
