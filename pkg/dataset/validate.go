package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jwebster45206/portal-router/pkg/route"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = validate.RegisterValidation("trimmed", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == strings.TrimSpace(s)
	})
	_ = validate.RegisterValidation("capability", func(fl validator.FieldLevel) bool {
		_, err := route.ParseCapability(fl.Field().String())
		return err == nil
	})
}

// Validate checks every record and reports all failures together.
func Validate(records []Record) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: dataset has no edges", ErrInvalidDataset)
	}

	var problems []string
	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			problems = append(problems, fmt.Sprintf("edge %d: %v", i, formatValidationError(err)))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidDataset, strings.Join(problems, "\n  - "))
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required", "notblank":
			msgs = append(msgs, fmt.Sprintf("%s: field is required", field))
		case "trimmed":
			msgs = append(msgs, fmt.Sprintf("%s: %q has surrounding whitespace", field, e.Value()))
		case "capability":
			msgs = append(msgs, fmt.Sprintf("%s: unknown capability %q", field, e.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: validation failed (%s)", field, e.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
