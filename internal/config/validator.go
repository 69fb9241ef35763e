package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tint/internal/domain/theme"
	"github.com/alexisbeaulieu97/tint/internal/stylesheet"
	tinterrors "github.com/alexisbeaulieu97/tint/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	lengthPattern = regexp.MustCompile(`^\d+(?:\.\d+)?(?:rem|em|px)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("color_mode", func(fl validator.FieldLevel) bool {
			return theme.ColorMode(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("token_name", func(fl validator.FieldLevel) bool {
			return theme.Token(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("token_value", func(fl validator.FieldLevel) bool {
			return validTokenValue(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func validTokenValue(value string) bool {
	if _, ok := stylesheet.ParseColor(value); ok {
		return true
	}
	return lengthPattern.MatchString(strings.TrimSpace(value))
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return tinterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if err := validateOverrideKinds("light", cfg.Overrides.Light); err != nil {
		return err
	}
	if err := validateOverrideKinds("dark", cfg.Overrides.Dark); err != nil {
		return err
	}

	return nil
}

// validateOverrideKinds rejects colours for the radius token and lengths for colour
// tokens.
func validateOverrideKinds(side string, overrides map[string]string) error {
	for name, value := range overrides {
		_, isColor := stylesheet.ParseColor(value)
		field := fmt.Sprintf("overrides.%s.%s", side, name)
		if theme.Token(name) == theme.TokenRadius && isColor && !lengthPattern.MatchString(value) {
			return tinterrors.NewValidationError(field, fmt.Sprintf("%s must be a length such as 0.5rem", field), nil)
		}
		if theme.Token(name) != theme.TokenRadius && !isColor {
			return tinterrors.NewValidationError(field, fmt.Sprintf("%s must be an HSL triplet, hex colour or ANSI index", field), nil)
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tinterrors.NewValidationError(field, msg, err)
	}

	return tinterrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}
