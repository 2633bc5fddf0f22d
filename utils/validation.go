package utils

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"DestinyRealEstate/apperr"
)

var validate = validator.New()

// ValidateStruct checks validate tags on a request record and folds the
// failures into a single ValidationError.
func ValidateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Validationf("invalid request body")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, strings.ToLower(fe.Field())+" is required")
		case "email":
			msgs = append(msgs, strings.ToLower(fe.Field())+" must be a valid email")
		default:
			msgs = append(msgs, strings.ToLower(fe.Field())+" is invalid")
		}
	}
	return apperr.Validationf("%s", strings.Join(msgs, "; "))
}

// IsValidExternalID reports whether id is a PROP-prefixed property ID.
func IsValidExternalID(id string) bool {
	if !strings.HasPrefix(id, "PROP") {
		return false
	}
	numStr := strings.TrimPrefix(id, "PROP")
	num, err := strconv.Atoi(numStr)
	if err != nil || num < 1000 {
		return false
	}
	return true
}
