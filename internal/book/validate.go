package book

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// check runs struct validation on a constructor input and converts the
// first failure into an ErrInvalidBook.
func check(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidBook, err)
	}

	fe := verrs[0]
	field := fe.Field()
	var message string
	switch fe.Tag() {
	case "required":
		message = fmt.Sprintf("%s is required", field)
	case "gt":
		message = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		message = fmt.Sprintf("%s is invalid", field)
	}
	return fmt.Errorf("%w: %s", ErrInvalidBook, message)
}
