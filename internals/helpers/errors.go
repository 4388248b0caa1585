package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"civicdata_backend/internals/configs"
)

/* ===============================
   Error taxonomy

   ApplicationError         -> 400 (business rule violation)
   NotFoundError            -> 404 (absent or soft-deleted)
   ValidationError          -> 422 (field-level, user-correctable)
   InternalApplicationError -> 500 (system invariant broken)
=================================*/

type ApplicationError struct {
	Message string
	Extra   map[string]any
}

func (e *ApplicationError) Error() string { return e.Message }

func NewApplicationError(message string) *ApplicationError {
	return &ApplicationError{Message: message, Extra: map[string]any{}}
}

type NotFoundError struct {
	Message string
	Extra   map[string]any
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message string) *NotFoundError {
	if message == "" {
		message = "Not found"
	}
	return &NotFoundError{Message: message, Extra: map[string]any{}}
}

type InternalApplicationError struct {
	Message string
	Extra   map[string]any
}

func (e *InternalApplicationError) Error() string { return e.Message }

func NewInternalApplicationError(message string) *InternalApplicationError {
	return &InternalApplicationError{Message: message, Extra: map[string]any{}}
}

type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "Validation error" }

func NewValidationError(fields map[string][]string) *ValidationError {
	if fields == nil {
		fields = map[string][]string{}
	}
	return &ValidationError{Fields: fields}
}

// JsonFromError is the single error->response mapping. Everything a
// controller gets back from a service funnels through here.
func JsonFromError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonValidationError(c, ve.Fields)
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return JsonErrorWithExtra(c, fiber.StatusNotFound, nf.Message, nf.Extra)
	}
	var ae *ApplicationError
	if errors.As(err, &ae) {
		return JsonErrorWithExtra(c, fiber.StatusBadRequest, ae.Message, ae.Extra)
	}
	var ie *InternalApplicationError
	if errors.As(err, &ie) {
		msg := ie.Message
		// internal detail never leaves the server in production
		if configs.GetEnv("APP_ENV", "development") == "production" {
			msg = "Internal server error"
		}
		return JsonErrorWithExtra(c, fiber.StatusInternalServerError, msg, ie.Extra)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "Not found")
	}
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
