package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/devlinkhq/devlink/pkg/apperror"
)

// bindingErrors turns a gin binding failure into the validation error shape,
// reporting every violated field, not just the first. messages maps the
// lowercased field name to its user-facing message; fields without an entry
// fall back to a generic one.
func bindingErrors(err error, messages map[string]string) *apperror.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewValidation([]apperror.FieldError{{Message: "Invalid request body", Param: "body"}})
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		param := strings.ToLower(fe.Field())
		msg, ok := messages[param]
		if !ok {
			msg = param + " is invalid"
		}
		fields = append(fields, apperror.FieldError{Message: msg, Param: param})
	}
	return apperror.NewValidation(fields)
}
