// Package validation applies field-level rules to incoming calendar
// configurations before the scheduler runs. Structural checks (collections
// present at all) stay in the calendar core; everything format- and
// length-shaped lives here.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"mastermind/internal/models"
)

var (
	usernameRegex  = regexp.MustCompile(`^[a-z0-9_]+$`)
	subredditRegex = regexp.MustCompile(`^r/\w+$`)
	keywordIDRegex = regexp.MustCompile(`^K\d+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Panics only on programmer error (bad tag names), so ignore returns.
	_ = v.RegisterValidation("persona_username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("subreddit_name", func(fl validator.FieldLevel) bool {
		return subredditRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("keyword_id", func(fl validator.FieldLevel) bool {
		return keywordIDRegex.MatchString(fl.Field().String())
	})

	return v
}

// fieldMessages maps failed rules to the user-facing messages the intake
// form shows for the same fields.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "persona_username":
		return "Username must be lowercase alphanumeric with underscores"
	case "subreddit_name":
		return "Subreddit must be in format r/name"
	case "keyword_id":
		return "Keyword ID must be in format K1, K2, etc."
	case "url":
		return "Valid website URL is required"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is required", fe.Field())
	}
}

// ValidateConfig checks every field-level rule on the configuration and
// returns a single validation error aggregating the failures.
func ValidateConfig(cfg *models.CalendarConfig) error {
	if cfg == nil {
		return models.NewValidationError("Config is required")
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return models.NewValidationError(err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Namespace(), fieldMessage(fe)))
	}
	return models.NewValidationError(strings.Join(msgs, "; "))
}
