package vacancy

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Input — описание вакансии, присланное вместе с резюме.
type Input struct {
	JobDescription string `json:"job_description" form:"job_description" validate:"notblank"`
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// ErrJobDescriptionRequired is returned when the description is missing or blank.
const ErrJobDescriptionRequired = ErrValidation("Job description is required")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks the input and maps field errors to client-facing messages.
func (in Input) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.StructField() == "JobDescription" {
				return ErrJobDescriptionRequired
			}
		}
	}
	return ErrValidation(err.Error())
}
