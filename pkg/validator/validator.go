package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/ghuser/inventory/pkg/httpx"
)

// Response messages written by DecodeRequest.
const (
	MsgInvalidBody  = "Invalid request body!"
	MsgBodyTooLarge = "Request body too large!"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// notblank rejects strings that are empty after trimming whitespace.
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// HasFieldError reports whether err is a validation failure on the field
// with the given JSON name.
func HasFieldError(err error, field string) bool {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return false
	}
	for _, e := range ve {
		if e.Field() == field {
			return true
		}
	}
	return false
}

// DecodeRequest decodes the JSON request body into T and writes a 400
// response if the body is not exactly one JSON object. An empty body decodes
// to the zero T so field validation reports the missing fields.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func DecodeRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if r.Body == nil {
		return &req, true
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return &req, true
		}
		writeDecodeError(w, err)
		return nil, false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeDecodeError(w, err)
		return nil, false
	}
	return &req, true
}

// writeDecodeError answers 413 for an exceeded body limit and 400 otherwise.
// A nil err means data followed the first JSON value.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httpx.Message(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		return
	}
	httpx.Message(w, http.StatusBadRequest, MsgInvalidBody)
}
