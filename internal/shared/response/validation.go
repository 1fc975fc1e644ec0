package response

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
)

// FromValidationError writes the 400 envelope for a failed DTO
// validation. ozzo's validation.Errors marshals to a field -> message
// map, which is exactly the required field-level error detail.
func FromValidationError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		ValidationFailed(c, verrs)
		return
	}
	BadRequest(c, err.Error())
}

// IsValidationError reports whether err came out of a DTO Validate().
func IsValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}
