package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	chaterrors "chat-hub/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json names, the client never sees Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Envelope is the minimal inbound frame a client sends over its channel.
// A sender field, if present, is ignored: the sender is the channel's owner.
type Envelope struct {
	Type     string `json:"type" validate:"required"`
	Receiver UserID `json:"receiver" validate:"required_if=Type private"`
	Text     string `json:"text" validate:"required_if=Type private"`
}

// ParseEnvelope decodes and validates a raw inbound payload.
// Errors wrap ErrMalformedPayload or ErrUnsupportedType.
func ParseEnvelope(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", chaterrors.ErrMalformedPayload, err)
	}
	if err := validate.Struct(env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %s", chaterrors.ErrMalformedPayload, describe(err))
	}
	switch env.Type {
	case TypePrivate, TypePing:
		return env, nil
	default:
		return Envelope{}, fmt.Errorf("%w: %q", chaterrors.ErrUnsupportedType, env.Type)
	}
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}
	return "missing " + strings.Join(missing, ", ")
}
