package apperr

import (
	"net/http"

	"github.com/garrettladley/dino/internal/xhttp"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes err as {"error": code, "message": text}. Errors that are
// not an *Error are reported as a generic internal error.
func WriteError(w http.ResponseWriter, err error) {
	appErr := AsError(err)
	if appErr == nil {
		appErr = Internal("internal_error", "an unexpected error occurred", err)
	}

	xhttp.WriteJSON(w, appErr.StatusCode, errorResponse{
		Error:   appErr.Code,
		Message: appErr.Message,
	})
}
