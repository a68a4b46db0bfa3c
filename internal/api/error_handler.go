package api

import (
	"errors"
	"fmt"
	"net/http"

	"country-exchange-service/internal/domain"
	"country-exchange-service/internal/pkg/constants"

	"github.com/labstack/echo/v4"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var ve *constants.ValidationError
	if errors.As(err, &ve) {
		fields := make([]domain.FieldError, 0, len(ve.Violations()))
		for _, v := range ve.Violations() {
			fields = append(fields, domain.FieldError{Field: v.Field, Message: v.Message})
		}
		_ = c.JSON(ve.Code(), domain.ValidationErrorResponse{StatusCode: ve.Code(), Errors: fields})
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError
	for walk := err; walk != nil; walk = errors.Unwrap(walk) {
		if ce, ok := walk.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
	}

	if code == http.StatusInternalServerError {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
		}
	}

	if code == http.StatusInternalServerError {
		// internal detail never reaches the client
		msg = "Internal Server Error"
	}

	_ = c.JSON(code, domain.ErrorResponse{StatusCode: code, Message: msg})
}
