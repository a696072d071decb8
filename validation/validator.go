// Package validation checks request payloads with go-playground/validator and
// turns failures into models.ErrorValidation with readable messages.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"mcp-playground/models"
)

// Validator wraps go-playground/validator with an English translator.
type Validator struct {
	v     *validator.Validate
	trans ut.Translator
}

// New creates a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		panic("register validator translations: " + err.Error())
	}

	return &Validator{v: v, trans: trans}
}

var defaultValidator = New()

// Validate checks s with the package-level validator.
func Validate(s any) error {
	return defaultValidator.Validate(s)
}

// Validate checks s and returns a models.ErrorValidation on failure. Missing
// required fields are reported together; otherwise the first failure wins.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return models.ErrorValidation{Message: err.Error()}
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return models.ErrorValidation{
			Message: "Missing required fields: " + strings.Join(missing, ", "),
			Field:   missing[0],
			Rule:    "required",
		}
	}

	fe := fieldErrs[0]
	return models.ErrorValidation{Message: fe.Translate(v.trans), Field: fe.Field(), Rule: fe.Tag()}
}
