package character

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	go_json "github.com/goccy/go-json"
)

// ErrStatusFetchFailed covers every way a status fetch can fail: transport
// errors, timeouts, non-2xx responses and undecodable bodies.
var ErrStatusFetchFailed = errors.New("character status fetch failed")

var ErrMissingPatientID = errors.New("missing patient id")

type FetchError struct {
	PatientID string
	Cause     error
}

func (e *FetchError) Error() string {
	if e.PatientID == "" {
		return ErrStatusFetchFailed.Error() + ": " + e.Cause.Error()
	}
	return fmt.Sprintf("%s for patient %q: %s", ErrStatusFetchFailed, e.PatientID, e.Cause)
}

func (e *FetchError) Unwrap() error { return e.Cause }

func (e *FetchError) Is(target error) bool { return target == ErrStatusFetchFailed }

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("character api: %d %s", e.StatusCode, e.Message)
}

func parseAPIError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := go_json.Unmarshal(body, &errResp); err != nil {
		msg := string(body)
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	msg := errResp.Message
	if msg == "" {
		msg = errResp.Error
	}
	if msg == "" {
		msg = resp.Status
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}

func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
