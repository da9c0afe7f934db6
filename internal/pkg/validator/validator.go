package validator

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/foodtruck-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// В details отдаём имена полей из json тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidateRequest валидирует DTO и переводит ошибки валидатора в AppError.
// base задаёт код и сообщение, в details попадают поля и нарушенные правила.
func ValidateRequest(s interface{}, base *errors.AppError) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest.Wrap(err)
	}

	fields := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Tag()
	}

	return base.WithDetails(map[string]interface{}{
		"fields": fields,
	})
}
