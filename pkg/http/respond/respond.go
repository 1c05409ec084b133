package respond

import (
	"encoding/json"
	"net/http"
)

// Client-facing messages for each error status.
const (
	MsgBadRequest    = "bad request"
	MsgNotFound      = "resource not found"
	MsgUnprocessable = "unprocessable"
	MsgInternal      = "internal server error"
)

// ErrorBody is the envelope returned for every failed request. The numeric
// error field mirrors the HTTP status so clients can branch on the body alone.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes the standard error envelope for the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Success: false, Error: status, Message: message})
}

// BadRequest writes a 400 envelope.
func BadRequest(w http.ResponseWriter) {
	Error(w, http.StatusBadRequest, MsgBadRequest)
}

// NotFound writes a 404 envelope.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, MsgNotFound)
}

// Unprocessable writes a 422 envelope.
func Unprocessable(w http.ResponseWriter) {
	Error(w, http.StatusUnprocessableEntity, MsgUnprocessable)
}

// Internal writes a 500 envelope.
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, MsgInternal)
}
