package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindJSON decodes the JSON body into out and validates it. Bodies that are
// not JSON, whatever their content type, are reported as 400; wrong field
// types, missing fields and null list elements as 422.
func bindJSON(c *fiber.Ctx, out any) error {
	if err := json.Unmarshal(c.Body(), out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{Details: []string{
				fmt.Sprintf("%s: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value),
			}}
		}
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := validate.Struct(out); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}

		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag()))
		}
		return &ValidationError{Details: details}
	}

	return nil
}
