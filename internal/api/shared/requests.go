package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/memory-cards/internal/domain"
)

// maxBodyBytes caps the size of a request body.
const maxBodyBytes = 1 << 16

// Global validator instance for reuse
var validate = newValidator()

// newValidator registers the game option tags next to the built-in ones.
func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "game_mode", func(fl validator.FieldLevel) bool {
		return domain.Mode(fl.Field().String()).Valid()
	})
	mustRegister(v, "game_style", func(fl validator.FieldLevel) bool {
		return domain.Style(fl.Field().String()).Valid()
	})
	mustRegister(v, "game_difficulty", func(fl validator.FieldLevel) bool {
		return domain.Difficulty(fl.Field().String()).Valid()
	})
	mustRegister(v, "summary_choice", func(fl validator.FieldLevel) bool {
		return domain.SummaryChoice(fl.Field().String()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("failed to register validation " + tag + ": " + err.Error())
	}
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}
