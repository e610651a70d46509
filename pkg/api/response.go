package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.connectwisedev.com/coffee-service/pkg/store"
)

// Response mirrors the catalog envelope so clients parse one shape.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func SuccessJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

func ErrorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Response{Success: false, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// statusFor maps store errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrLineNotFound),
		errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidQuantity),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, store.ErrInvalidDeliveryType),
		errors.Is(err, store.ErrAddressRequired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
