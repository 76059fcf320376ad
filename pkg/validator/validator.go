package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

// Angolan mobile numbers: nine digits starting with 9.
var aoPhoneRegex = regexp.MustCompile(`^9[0-9]{8}$`)

func init() {
	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})

	validate.RegisterValidation("ao_phone", func(fl validator.FieldLevel) bool {
		return aoPhoneRegex.MatchString(fl.Field().String())
	})
}

// IsValidPhone reports whether phone matches the regional mobile format.
func IsValidPhone(phone string) bool {
	return aoPhoneRegex.MatchString(phone)
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
