package util

import (
	"errors"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// HTTPError maps an error onto the API's error taxonomy. Upstream and
// unexpected failures collapse to a generic 500 body; the root cause is
// for server-side logs only.
func HTTPError(err error) (int, ErrorBody) {
	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		body := ErrorBody{Error: validationErr.Message}
		if len(validationErr.Fields) > 0 {
			body.Details = validationErr.Fields
		}
		return fiber.StatusBadRequest, body
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, ErrorBody{Error: fiberErr.Message}
	}

	switch {
	case errors.Is(err, apperror.ErrUnauthorized):
		return fiber.StatusUnauthorized, ErrorBody{Error: "Unauthorized"}
	case errors.Is(err, apperror.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound, ErrorBody{Error: "Not found"}
	case errors.Is(err, apperror.ErrAnalysisFailed),
		errors.Is(err, apperror.ErrMalformedResponse),
		errors.Is(err, apperror.ErrExtractionFailed),
		errors.Is(err, apperror.ErrTemplateNotFound):
		return fiber.StatusInternalServerError, ErrorBody{Error: "Something went wrong, please try again"}
	default:
		return fiber.StatusInternalServerError, ErrorBody{Error: "Internal server error"}
	}
}
