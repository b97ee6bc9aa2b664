package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/BattleArena_Go/internal/domain"
	"github.com/osse101/BattleArena_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so a failure can still produce a clean 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and answers with the mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgServiceCallFailed, opName), "error", err)
	} else {
		log.Info(fmt.Sprintf(LogMsgServiceCallFailed, opName), "error", err, "status", status)
	}
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act on. Unknown errors become a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrBattleNotFound):
		return http.StatusNotFound, ErrMsgBattleNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrSlotsExceeded):
		return http.StatusBadRequest, ErrMsgSlotsExceededError
	case errors.Is(err, domain.ErrArmyFull):
		return http.StatusBadRequest, ErrMsgArmyFullError
	case errors.Is(err, domain.ErrArmyEmpty):
		return http.StatusBadRequest, ErrMsgArmyEmptyError
	case errors.Is(err, domain.ErrInvalidUnitName):
		return http.StatusBadRequest, ErrMsgUnitNameError
	case errors.Is(err, domain.ErrTooManyItems):
		return http.StatusBadRequest, ErrMsgTooManyItemsError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
