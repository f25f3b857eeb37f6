package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kelvinjuma/airtime-recharge-service/internal/delivery/http/dto/response"
	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the domain error taxonomy to HTTP statuses. Provider
// detail is exposed through the details field only.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"
	details := ""

	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidFormat):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrUpstreamAuthFailure), errors.Is(err, domain.ErrUpstreamUnreachable):
		status = http.StatusBadGateway
		message = "recharge failed"
	case errors.Is(err, domain.ErrUpstreamError):
		status = http.StatusBadGateway
		message = "recharge failed"
		var providerErr *domain.ProviderError
		if errors.As(err, &providerErr) {
			details = providerErr.Description
		}
	case errors.Is(err, domain.ErrLedgerWriteFailure):
		status = http.StatusInternalServerError
		message = "failed to record transaction"
	case errors.Is(err, domain.ErrDuplicateTransaction):
		status = http.StatusConflict
		message = "duplicate transaction"
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	}

	writeJSON(w, status, response.ErrorResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}
