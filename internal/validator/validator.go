// Package validator registers custom request validators with gin.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// skillRegex matches skill names: letters, digits, and the punctuation that
// shows up in real skill names ("c++", "c#", "ui/ux design"), no leading or
// trailing whitespace.
var skillRegex = regexp.MustCompile(`^[A-Za-z0-9+#&/.'()-]+( [A-Za-z0-9+#&/.'()-]+)*$`)

// validateSkill validates that a string is a plausible skill name.
func validateSkill(fl validator.FieldLevel) bool {
	return skillRegex.MatchString(fl.Field().String())
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("skill", validateSkill)
	}
}
