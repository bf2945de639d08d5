package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"feedhub/errors"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps outcome sentinels to wire status codes and renders
// the message as JSON like every other response body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case stderrors.Is(err, errors.ErrBadRequest),
		stderrors.Is(err, errors.ErrMalformedIdentity),
		stderrors.Is(err, errors.ErrInvalidPassword):
		status = http.StatusBadRequest
	case stderrors.Is(err, errors.ErrForbidden):
		status = http.StatusForbidden
	case stderrors.Is(err, errors.ErrNotFound):
		status = http.StatusNotFound
	case stderrors.Is(err, errors.ErrConflict):
		status = http.StatusConflict
	case stderrors.Is(err, errors.ErrUnavailable):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
