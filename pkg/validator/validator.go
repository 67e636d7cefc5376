// Package validator configures gin's go-playground validator engine and
// renders its failures as client-facing messages.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Time-of-day layouts accepted by the clocktime tag.
var clockLayouts = []string{"15:04", "15:04:05"}

var registerOnce sync.Once

// Register installs the JSON tag-name function and custom tags on gin's
// validator engine. It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		if err := v.RegisterValidation("clocktime", validateClockTime); err != nil {
			panic(err)
		}
	})
}

func validateClockTime(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return IsClockTime(s)
}

// IsClockTime reports whether s is HH:MM or HH:MM:SS.
func IsClockTime(s string) bool {
	for _, layout := range clockLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// Message converts a binding error into the text returned to clients.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldMessage(verrs[0])
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("invalid type for field %s", typeErr.Field)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "invalid JSON body"
	}

	if errors.Is(err, io.EOF) {
		return "request body is required"
	}

	return err.Error()
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("missing required field: %s", field)
	case "oneof":
		return fmt.Sprintf("invalid %s, must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "clocktime":
		return fmt.Sprintf("%s must be a time of day (HH:MM or HH:MM:SS)", field)
	case "datetime":
		return fmt.Sprintf("%s must match format %s", field, fe.Param())
	case "gt", "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
