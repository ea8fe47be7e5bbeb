package httpapi

import (
	"encoding/json"
	"net/http"
)

// Status values of the callable error envelope.
const (
	statusInvalidArgument = "INVALID_ARGUMENT"
	statusInternal        = "INTERNAL"
)

type resultResponse struct {
	Result any `json:"result"`
}

type errorResponse struct {
	Error callableError `json:"error"`
}

type callableError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeResult(w http.ResponseWriter, result any) {
	writeJSON(w, http.StatusOK, resultResponse{Result: result})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: callableError{Status: code, Message: message}})
}
