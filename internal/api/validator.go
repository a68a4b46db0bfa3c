package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"country-exchange-service/internal/pkg/constants"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("query"); name != "" && name != "-" {
			return name
		}
		if name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]; name != "" && name != "-" {
			return name
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Validate converts validator failures into the service's validation error:
// missing required fields are a 400, anything else a 422. Query-bound input
// is downgraded to 400 by the Binder.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	code := http.StatusUnprocessableEntity
	violations := make([]constants.FieldViolation, 0, len(ves))
	for _, fe := range ves {
		if fe.Tag() == "required" {
			code = http.StatusBadRequest
		}
		violations = append(violations, constants.FieldViolation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}

	return constants.NewValidationError(code, violations...)
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return "is invalid"
	}
}

// Binder binds and validates in one pass, the way handlers expect to consume
// query input.
type Binder struct {
	binder echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.binder.Bind(i, c); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return constants.NewValidationError(http.StatusBadRequest,
				constants.FieldViolation{Field: "query", Message: fmt.Sprint(he.Message)})
		}
		return err
	}

	if n, ok := i.(interface{ Normalize() }); ok {
		n.Normalize()
	}

	if err := c.Validate(i); err != nil {
		var ve *constants.ValidationError
		if errors.As(err, &ve) && c.Request().Method == http.MethodGet {
			// bad query params are always a client 400
			return constants.NewValidationError(http.StatusBadRequest, ve.Violations()...)
		}
		return err
	}

	return nil
}
