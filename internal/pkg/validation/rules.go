package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// ClockPattern is a zero-padded 24h HH:MM clock value
	ClockPattern = `^([01][0-9]|2[0-3]):[0-5][0-9]$`

	// PasswordMinLength is the minimum account password length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Clock *regexp.Regexp
}{
	Clock: regexp.MustCompile(ClockPattern),
}

// Custom binding tags
const (
	TagClock    = "clock"
	TagNotBlank = "notblank"
)

// RegisterCustomValidators adds the custom tags to gin's validator engine.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

// Register adds the custom tags to v
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(TagClock, validateClock); err != nil {
		return fmt.Errorf("registering %s: %w", TagClock, err)
	}
	if err := v.RegisterValidation(TagNotBlank, validateNotBlank); err != nil {
		return fmt.Errorf("registering %s: %w", TagNotBlank, err)
	}
	return nil
}

func validateClock(fl validator.FieldLevel) bool {
	return IsClock(fl.Field().String())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// IsClock reports whether s is a valid HH:MM value
func IsClock(s string) bool {
	return CompiledPatterns.Clock.MatchString(s)
}
