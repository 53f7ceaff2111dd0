package middleware

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/devcamper/internal/app/models/dto"
)

// Request field messages for binding failures
var requestFieldMessages = map[string]string{
	"title":        "Please add a course title",
	"description":  "Please add a description",
	"weeks":        "Please add number of weeks",
	"tuition":      "Please add a tuition cost",
	"minimumSkill": "Please add a minimum skill: beginner, intermediate or advanced",
	"bootcamp":     "Please add a valid bootcamp id",
}

func init() {
	// Report json names instead of Go field names in binding errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// BindingErrorDetail turns a ShouldBindJSON error into a VAL_001 detail
// listing every offending field.
func BindingErrorDetail(err error) *dto.ErrorDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = formatValidationError(fe)
		}
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithField(typeErr.Field).
			WithDetails(map[string]string{typeErr.Field: "must be a " + typeErr.Type.String()})
	}

	return dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid request format").WithDetails(err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	if msg, ok := requestFieldMessages[e.Field()]; ok && (e.Tag() == "required" || e.Tag() == "oneof" || e.Tag() == "uuid") {
		return msg
	}
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "uuid":
		return e.Field() + " must be a valid UUID"
	default:
		return e.Field() + " is invalid"
	}
}
