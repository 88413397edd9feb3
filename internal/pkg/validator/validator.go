package validator

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"travelbooking/internal/domain"
	"travelbooking/internal/pkg/isodate"
)

var once sync.Once

// Register installs the custom rules and field naming on gin's binding engine.
// Safe to call more than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return isodate.Valid(fl.Field().String())
		})
		_ = v.RegisterValidation("oneofci", oneOfFold)
	})
}

// Validate runs the binding rules against an already decoded value.
func Validate(v interface{}) []domain.FieldError {
	Register()
	if err := binding.Validator.ValidateStruct(v); err != nil {
		return FieldErrors(err)
	}
	return nil
}

// FieldErrors converts a binding or validation failure into client-facing field errors.
func FieldErrors(err error) []domain.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]domain.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, domain.FieldError{Field: path(fe.Namespace()), Message: message(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []domain.FieldError{{Field: typeErr.Field, Message: "has an invalid type"}}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return []domain.FieldError{{Message: "Request body too large"}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []domain.FieldError{{Message: "Malformed JSON body"}}
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return []domain.FieldError{{Message: numberMessage(numErr)}}
	}

	return []domain.FieldError{{Message: "Invalid request input"}}
}

// BindQuery binds the query string into obj. A value that fails to parse is
// reported against the query parameter that carried it.
func BindQuery(c *gin.Context, obj interface{}) []domain.FieldError {
	err := c.ShouldBindQuery(obj)
	if err == nil {
		return nil
	}

	errs := FieldErrors(err)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		for key, values := range c.Request.URL.Query() {
			for _, v := range values {
				if v == numErr.Num {
					errs[0].Field = key
					return errs
				}
			}
		}
	}
	return errs
}

func numberMessage(err *strconv.NumError) string {
	if errors.Is(err.Err, strconv.ErrRange) {
		return "is out of range"
	}
	switch err.Func {
	case "ParseFloat":
		return "must be a number"
	case "ParseBool":
		return "must be true or false"
	}
	return "must be an integer"
}

// oneOfFold is oneof for coded values that match case-insensitively.
func oneOfFold(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, opt := range strings.Fields(fl.Param()) {
		if strings.EqualFold(value, opt) {
			return true
		}
	}
	return false
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// path drops the root struct name from a validator namespace.
func path(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "isodate":
		return "must be a valid ISO 8601 date"
	case "oneof", "oneofci":
		return "must be one of: " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " item(s)"
		}
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	}
	return "failed " + fe.Tag() + " validation"
}
