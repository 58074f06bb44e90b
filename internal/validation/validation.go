package validation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const StatusFail = "fail"

const (
	CodeInvalidBody      = "INVALID_REQUEST_BODY"
	CodeValidationFailed = "VALIDATION_FAILED"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status  string       `json:"status"`
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Rule gives a failing field/tag pair its own code and client message.
// When several rules match, the first one in the list wins.
type Rule struct {
	Field  string
	Tag    string
	Code   string
	Reason string
}

// BindAndValidateJSON binds the request body into dst and runs its binding
// tags. On failure it aborts with a 400 whose message is prefix followed by
// the reason of the highest-priority matching rule. Int fields that did not
// hold a whole number are reported only when no rule matched.
func BindAndValidateJSON(c *gin.Context, dst any, prefix string, rules ...Rule) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		if invalid := invalidInts(dst); len(invalid) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, typeErrorResponse(prefix, invalid))
			return false
		}
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, formatValidationErrors(verrs, prefix, rules, invalidInts(dst)))
		return false
	}

	// A mistyped field does not stop the decoder, so the rest of dst is
	// filled and the rules still get their say.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		invalid := append(invalidInts(dst), FieldError{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: typeErr.Field + " harus bertipe " + typeErr.Type.Kind().String(),
		})

		if verr := binding.Validator.ValidateStruct(dst); errors.As(verr, &verrs) {
			c.AbortWithStatusJSON(http.StatusBadRequest, formatValidationErrors(verrs, prefix, rules, invalid))
			return false
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, typeErrorResponse(prefix, invalid))
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Status:  StatusFail,
		Code:    CodeInvalidBody,
		Message: prefix + ". Body request tidak valid",
		Errors: []FieldError{
			{
				Field:   "",
				Rule:    "syntax",
				Message: err.Error(),
			},
		},
	})
	return false
}

func formatValidationErrors(verrs validator.ValidationErrors, prefix string, rules []Rule, invalid []FieldError) ErrorResponse {
	unreadable := make(map[string]bool, len(invalid))
	for _, f := range invalid {
		unreadable[f.Field] = true
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		jsonField := toJSONFieldName(fe.Field())
		// Errors on, or compared against, an unreadable number say nothing
		// useful; the type error covers them.
		if unreadable[jsonField] || unreadable[toJSONFieldName(fe.Param())] {
			continue
		}
		fields = append(fields, FieldError{
			Field:   jsonField,
			Rule:    fe.Tag(),
			Message: buildMessage(jsonField, fe),
		})
	}

	for _, rule := range rules {
		for _, f := range fields {
			if f.Field == rule.Field && f.Rule == rule.Tag {
				return ErrorResponse{
					Status:  StatusFail,
					Code:    rule.Code,
					Message: prefix + ". " + rule.Reason,
				}
			}
		}
	}

	if len(invalid) > 0 {
		return typeErrorResponse(prefix, invalid)
	}

	return ErrorResponse{
		Status:  StatusFail,
		Code:    CodeValidationFailed,
		Message: prefix + ". " + fields[0].Message,
		Errors:  fields,
	}
}

func typeErrorResponse(prefix string, invalid []FieldError) ErrorResponse {
	return ErrorResponse{
		Status:  StatusFail,
		Code:    CodeInvalidBody,
		Message: prefix + ". " + invalid[0].Message,
		Errors:  invalid,
	}
}

func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " wajib diisi"
	case "min":
		return field + " tidak boleh kurang dari " + fe.Param()
	}

	return field + " tidak valid (" + fe.Tag() + ")"
}
