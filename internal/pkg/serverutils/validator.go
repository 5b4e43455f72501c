package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO and wraps the
// first failure into a 400 ApiError.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return NewBadRequestError(fmt.Sprintf("field %s failed on %s", f.Field(), f.Tag()))
		}
		return NewBadRequestError(err.Error())
	}
	return nil
}
