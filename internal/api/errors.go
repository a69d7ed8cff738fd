package api

import (
	"encoding/json"
	"net/http"
)

// errorBody is the error envelope clients rely on: a human-readable message
// they can surface directly, with their own fallback when it is absent.
type errorBody struct {
	Message string `json:"message"`
}

// RespondJSON writes v as a JSON response body with the given status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, errorBody{Message: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	respondError(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	respondError(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter) {
	respondError(w, http.StatusForbidden, "forbidden")
}

func NotFound(w http.ResponseWriter, err error) {
	respondError(w, http.StatusNotFound, err.Error())
}

func MethodNotAllowed(w http.ResponseWriter) {
	respondError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func InternalServerError(w http.ResponseWriter, err error) {
	respondError(w, http.StatusInternalServerError, err.Error())
}
