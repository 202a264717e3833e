package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tgasparic/paketnik/internal/status"
	"github.com/tgasparic/paketnik/internal/store"
)

// writeError maps core errors to HTTP statuses. All core-detected errors are
// recoverable at this boundary: they become user-facing messages, never a
// crash. Anything unrecognized is logged and reported as a 500 with fallback.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *store.ValidationError
	var terr *status.InvalidTransitionError

	switch {
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, "item not found")
	case errors.As(err, &verr):
		jsonError(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &terr):
		jsonError(w, http.StatusConflict, terr.Error())
	default:
		slog.Error(fallback, "error", err)
		jsonError(w, http.StatusInternalServerError, fallback)
	}
}
