package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
	"github.com/maxiipins/storefront-service/internal/infra/commerce"
)

type errorBody struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorBody{Message: message})
}

// respondMappedError translates domain sentinel errors into HTTP statuses.
// Unknown errors become 500.
func respondMappedError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		respondError(w, http.StatusGatewayTimeout, err.Error())
		return
	}

	// Not found
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrContractNotFound):
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	// Invalid argument (validation)
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrInvalidNationalID),
		errors.Is(err, domain.ErrBirthDateRequired),
		errors.Is(err, domain.ErrMissingField):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Failed precondition (session / cart state)
	switch {
	case errors.Is(err, domain.ErrCartEmpty),
		errors.Is(err, domain.ErrLoginInProgress):
		respondError(w, http.StatusConflict, err.Error())
		return
	}

	if errors.Is(err, domain.ErrNotAuthenticated) {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	// Upstream failures keep their status for client errors; server-side
	// upstream trouble surfaces as a bad gateway.
	var apiErr *commerce.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusBadGateway
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			status = apiErr.StatusCode
		}
		respondError(w, status, apiErr.UserMessage())
		return
	}

	respondError(w, http.StatusInternalServerError, err.Error())
}
