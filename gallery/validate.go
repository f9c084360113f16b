package gallery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dasdy/spookydraw/model"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var ErrInvalid = errors.New("validation failed")

// Validator checks records coming from outside and strips markup from their
// free text fields.
type Validator struct {
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
}

func NewValidator() *Validator {
	return &Validator{
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// ValidateUser sanitizes the user in place, then checks it.
func (v *Validator) ValidateUser(user *model.User) error {
	user.Username = v.sanitize(user.Username)
	user.Email = strings.TrimSpace(user.Email)

	if err := v.validate.Struct(user); err != nil {
		return formatValidationErrors("user "+user.ID, err)
	}

	return nil
}

// ValidateDrawing sanitizes the drawing in place, then checks it.
func (v *Validator) ValidateDrawing(drawing *model.Drawing) error {
	drawing.Title = v.sanitize(drawing.Title)
	drawing.AuthorName = v.sanitize(drawing.AuthorName)

	tags := make([]string, 0, len(drawing.Tags))

	for _, tag := range drawing.Tags {
		if clean := v.sanitize(tag); clean != "" {
			tags = append(tags, clean)
		}
	}

	drawing.Tags = tags

	if err := v.validate.Struct(drawing); err != nil {
		return formatValidationErrors("drawing "+drawing.ID, err)
	}

	return nil
}

// ValidateSettings checks the application settings, including that every
// referenced tool exists.
func (v *Validator) ValidateSettings(settings *model.AppSettings) error {
	if err := v.validate.Struct(settings); err != nil {
		return formatValidationErrors("settings", err)
	}

	if !settings.DefaultTool.Valid() {
		return fmt.Errorf("%w: settings: default tool: %w", ErrInvalid, unknownTool(settings.DefaultTool))
	}

	for _, t := range settings.DisabledTools {
		if !t.Valid() {
			return fmt.Errorf("%w: settings: disabled tools: %w", ErrInvalid, unknownTool(t))
		}
	}

	if settings.ToolDisabled(settings.DefaultTool) {
		return fmt.Errorf("%w: settings: default tool %q is disabled", ErrInvalid, settings.DefaultTool)
	}

	return nil
}

func unknownTool(t model.Tool) error {
	_, err := model.ParseTool(string(t))

	return err
}

func (v *Validator) sanitize(s string) string {
	return strings.TrimSpace(v.sanitizer.Sanitize(s))
}

func formatValidationErrors(subject string, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, subject, err)
	}

	return fmt.Errorf("%w: %s: %s", ErrInvalid, subject, formatSingleError(validationErrors[0]))
}

func formatSingleError(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", field)
	case "min", "max", "gte":
		return fmt.Sprintf("'%s' value out of allowed range", field)
	case "email":
		return fmt.Sprintf("'%s' must be a valid email", field)
	case "datauri":
		return fmt.Sprintf("'%s' must be a data URI", field)
	default:
		return fmt.Sprintf("'%s' is invalid", field)
	}
}
