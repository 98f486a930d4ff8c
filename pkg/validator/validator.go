package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (f FieldError) String() string {
	return fmt.Sprintf("Field: %s, Tag: %s, Param: %s", f.Field, f.Tag, f.Param)
}

// Fields returns the failed checks of s, or nil when s is valid.
func Fields(s interface{}) ([]FieldError, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil, err
	}

	fields := make([]FieldError, 0, len(vErrs))
	for _, e := range vErrs {
		fields = append(fields, FieldError{Field: e.Field(), Tag: e.Tag(), Param: e.Param()})
	}
	return fields, nil
}

func ValidateStruct(s interface{}) error {
	fields, err := Fields(s)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if len(fields) == 0 {
		return nil
	}

	errMsgs := make([]string, 0, len(fields))
	for _, f := range fields {
		errMsgs = append(errMsgs, f.String())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
