package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/castdraft/castdraft/go/internal/draft"
	"github.com/castdraft/castdraft/go/internal/group"
	"github.com/castdraft/castdraft/go/internal/queue"
	"github.com/castdraft/castdraft/go/internal/roster"
	"github.com/rs/zerolog/log"
)

// Error codes for standardized API error responses.
const (
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflictRetry  = "CONFLICT_RETRY"
	ErrCodeNotYourTurn    = "NOT_YOUR_TURN"
	ErrCodeAlreadyDrafted = "ALREADY_DRAFTED"
	ErrCodeNoActiveRound  = "NO_ACTIVE_ROUND"
	ErrCodeRoundActive    = "ROUND_ACTIVE"
	ErrCodeNoUsers        = "NO_USERS"
	ErrCodeQueueLocked    = "QUEUE_LOCKED"
	ErrCodeStorage        = "STORAGE_UNAVAILABLE"
	ErrCodeInternal       = "INTERNAL_SERVER_ERROR"
)

// APIError represents an error with an HTTP status code and error code.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

// BadRequest creates a 400 error with a custom message.
func BadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: ErrCodeBadRequest, Message: message}
}

// apiError maps app and engine errors onto HTTP responses.
func apiError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, group.ErrGroupNotFound) || errors.Is(err, roster.ErrSeasonNotFound):
		return &APIError{Status: http.StatusNotFound, Code: ErrCodeNotFound, Message: err.Error()}
	case errors.Is(err, group.ErrVersionConflict):
		return &APIError{Status: http.StatusConflict, Code: ErrCodeConflictRetry, Message: err.Error()}
	case errors.Is(err, group.ErrGroupExists):
		return &APIError{Status: http.StatusConflict, Code: ErrCodeBadRequest, Message: err.Error()}
	case errors.Is(err, group.ErrDuplicateUser) || errors.Is(err, group.ErrInvalidSelection):
		return &APIError{Status: http.StatusBadRequest, Code: ErrCodeValidation, Message: err.Error()}
	case errors.Is(err, draft.ErrNotYourTurn):
		return &APIError{Status: http.StatusConflict, Code: ErrCodeNotYourTurn, Message: err.Error()}
	case errors.Is(err, draft.ErrAlreadyDrafted):
		return &APIError{Status: http.StatusConflict, Code: ErrCodeAlreadyDrafted, Message: err.Error()}
	case errors.Is(err, draft.ErrNoActiveRound):
		return &APIError{Status: http.StatusConflict, Code: ErrCodeNoActiveRound, Message: err.Error()}
	case errors.Is(err, draft.ErrRoundActive):
		return &APIError{Status: http.StatusConflict, Code: ErrCodeRoundActive, Message: err.Error()}
	case errors.Is(err, draft.ErrNoUsers):
		return &APIError{Status: http.StatusBadRequest, Code: ErrCodeNoUsers, Message: err.Error()}
	case errors.Is(err, draft.ErrUnknownUser):
		return &APIError{Status: http.StatusBadRequest, Code: ErrCodeValidation, Message: err.Error()}
	case errors.Is(err, draft.ErrQueueLocked):
		return &APIError{Status: http.StatusLocked, Code: ErrCodeQueueLocked, Message: err.Error()}
	case errors.Is(err, group.ErrStorageUnavailable) || errors.Is(err, queue.ErrStorageUnavailable):
		return &APIError{Status: http.StatusServiceUnavailable, Code: ErrCodeStorage, Message: "storage temporarily unavailable"}
	default:
		log.Error().Err(err).Msg("unhandled error")
		return &APIError{Status: http.StatusInternalServerError, Code: ErrCodeInternal, Message: "internal server error"}
	}
}

// decodeJSON decodes a request body into dst, rejecting malformed payloads.
func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err != nil {
		return BadRequest("failed to read request body")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return BadRequest("invalid JSON payload")
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondOK(w http.ResponseWriter, v any) {
	respondJSON(w, http.StatusOK, v)
}

func respondError(w http.ResponseWriter, err error) {
	apiErr := apiError(err)
	respondJSON(w, apiErr.Status, apiErr)
}
