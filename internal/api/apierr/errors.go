package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackiesafari/dam-attack-sub002/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidCommand  = "INVALID_COMMAND"
	CodeInvalidScore    = "INVALID_SCORE"
	CodeInvalidPlayer   = "INVALID_PLAYER"
	CodeGameNotFound    = "GAME_NOT_FOUND"
	CodePlayerNotFound  = "PLAYER_NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// NewBadRequest creates a 400 error with the given code and message
func NewBadRequest(code, message string) error {
	return &httpError{
		status:   http.StatusBadRequest,
		apiError: APIError{Code: code, Message: message},
	}
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{
			status:   http.StatusNotFound,
			apiError: APIError{Code: CodeGameNotFound, Message: "game not found"},
		}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{
			status:   http.StatusNotFound,
			apiError: APIError{Code: CodePlayerNotFound, Message: "player has no recorded score"},
		}
	case errors.Is(err, model.ErrInvalidCommand):
		return &httpError{
			status:   http.StatusBadRequest,
			apiError: APIError{Code: CodeInvalidCommand, Message: "invalid command"},
		}
	case errors.Is(err, model.ErrInvalidPlayerName):
		return &httpError{
			status:   http.StatusBadRequest,
			apiError: APIError{Code: CodeInvalidPlayer, Message: "invalid player name"},
		}
	case errors.Is(err, model.ErrInvalidScore):
		return &httpError{
			status:   http.StatusBadRequest,
			apiError: APIError{Code: CodeInvalidScore, Message: "invalid score submission"},
		}
	default:
		return &httpError{
			status:   http.StatusInternalServerError,
			apiError: APIError{Code: CodeInternalError, Message: "internal server error"},
		}
	}
}
