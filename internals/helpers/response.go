package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"symposium_backend/internals/errs"
)

// Success response without custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// Success response with custom code (e.g. 201 for created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// Plain error response
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// Error response with per-field details
func ErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  details,
	})
}

// ValidationError renders validator.v10 failures as a field→tag map.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errorsMap)
}

// DomainError maps workflow error kinds to HTTP statuses.
func DomainError(c *fiber.Ctx, err error) error {
	var de *errs.Error
	if !errors.As(err, &de) {
		return Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	switch de.Kind {
	case errs.KindValidation:
		if de.Field != "" {
			return ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{de.Field: de.Message})
		}
		return Error(c, fiber.StatusBadRequest, de.Error())
	case errs.KindNotFound:
		return Error(c, fiber.StatusNotFound, de.Error())
	case errs.KindCapacity, errs.KindTypeMismatch, errs.KindDuplicateAssignment,
		errs.KindImmutableRecord, errs.KindAlreadySubmitted:
		return Error(c, fiber.StatusConflict, de.Error())
	default:
		return Error(c, fiber.StatusInternalServerError, de.Error())
	}
}
