package validate

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
)

// Validator plugs ozzo-validation rules into echo's c.Validate.
type Validator struct{}

func (Validator) Validate(i any) error {
	v, ok := i.(validation.Validatable)
	if !ok {
		return nil
	}
	return v.Validate()
}

// HTTPError turns a validation failure into a 422 carrying per-field messages.
func HTTPError(err error) *echo.HTTPError {
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot validate request")
	}

	var fields validation.Errors
	if errors.As(err, &fields) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, echo.Map{
			"message": "validation failed",
			"detail":  Detail(fields),
		})
	}
	return echo.NewHTTPError(http.StatusUnprocessableEntity, echo.Map{
		"message": "validation failed",
		"detail":  err.Error(),
	})
}

func Detail(fields validation.Errors) map[string]string {
	detail := make(map[string]string, len(fields))
	for name, err := range fields {
		if err != nil {
			detail[name] = err.Error()
		}
	}
	return detail
}
