package shapehttp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/validation/pkg/binder"
	"github.com/dmitrymomot/validation/pkg/requestid"
	"github.com/dmitrymomot/validation/pkg/shape"
)

// Error codes used in ErrorDetail.Code.
const (
	CodeValidationFailed     = "validation_failed"
	CodeBadRequest           = "bad_request"
	CodePayloadTooLarge      = "payload_too_large"
	CodeUnsupportedMediaType = "unsupported_media_type"
)

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorDetail describes a failure. Details maps dotted paths to messages
// and Fields holds the same failures as a tree.
type ErrorDetail struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Details map[string][]string  `json:"details,omitempty"`
	Fields  *shape.InvalidFields `json:"fields,omitempty"`
}

// NewErrorResponse classifies err and returns the status and body for it.
// validationStatus is used for *shape.ValidationError.
func NewErrorResponse(err error, validationStatus int) (int, ErrorResponse) {
	if verr := shape.ExtractValidationError(err); verr != nil {
		return validationStatus, ErrorResponse{Error: ErrorDetail{
			Code:    CodeValidationFailed,
			Message: verr.Message,
			Details: verr.Invalid.Flatten(),
			Fields:  verr.Invalid,
		}}
	}

	status, code := http.StatusBadRequest, CodeBadRequest
	switch {
	case errors.Is(err, binder.ErrRequestTooLarge):
		status, code = http.StatusRequestEntityTooLarge, CodePayloadTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		status, code = http.StatusUnsupportedMediaType, CodeUnsupportedMediaType
	}
	return status, ErrorResponse{Error: ErrorDetail{Code: code, Message: err.Error()}}
}

// WriteError renders err as JSON with the status chosen by NewErrorResponse.
func WriteError(w http.ResponseWriter, r *http.Request, err error, validationStatus int) {
	status, body := NewErrorResponse(err, validationStatus)
	body.RequestID = requestid.FromContext(r.Context())

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
