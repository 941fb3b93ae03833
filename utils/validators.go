package utils

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// InitValidator registers custom binding rules on gin's validator engine.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", ValidateUsernameRule)
	}
}

func ValidateUsernameRule(fl validator.FieldLevel) bool {
	return ValidateUsername(fl.Field().String())
}

// ValidateUsername accepts 3-30 characters: letters, digits, underscore.
// Usernames are case-sensitive; no normalization happens here.
func ValidateUsername(username string) bool {
	if len(username) < 3 || len(username) > 30 {
		return false
	}

	for _, char := range username {
		switch {
		case unicode.IsLetter(char):
		case unicode.IsNumber(char):
		case char == '_':
		default:
			return false
		}
	}

	return true
}
