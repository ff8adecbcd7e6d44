package controller

import (
	"encoding/json"
	"net/http"

	"github.com/api-sage/bank-ledger/src/internal/commons"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFor maps a failed service response message to an HTTP status.
func statusFor(message string) int {
	switch message {
	case commons.MessageValidationFailed:
		return http.StatusBadRequest
	case commons.MessageClientNotFound, commons.MessageAccountNotFound:
		return http.StatusNotFound
	case commons.MessageDuplicateClient:
		return http.StatusConflict
	case commons.MessageTransactionDenied:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func wrap(handler http.HandlerFunc, authMiddleware func(http.Handler) http.Handler) http.Handler {
	if authMiddleware == nil {
		return handler
	}
	return authMiddleware(handler)
}
