package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks the parsed configuration for values env parsing cannot catch
func Validate(cfg *Config) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %s", FormatValidationError(err))
	}
	return nil
}

// FormatValidationError flattens validator errors into "FIELD: reason" pairs
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required", "required_if":
			msgs = append(msgs, field+": is required")
		case "url":
			msgs = append(msgs, field+": must be a URL")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: must be one of [%s]", field, e.Param()))
		case "min", "max", "gt":
			msgs = append(msgs, fmt.Sprintf("%s: out of range (%s %s)", field, e.Tag(), e.Param()))
		default:
			msgs = append(msgs, field+": invalid value")
		}
	}
	sort.Strings(msgs)
	return strings.Join(msgs, ", ")
}

// Warnings returns non-fatal configuration issues worth logging at startup
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.DiscordAppID == "" {
		warnings = append(warnings, "DISCORD_APP_ID not set - slash commands will not be registered")
	}

	if cfg.GuildName == "" {
		warnings = append(warnings, "GUILD_NAME not set - guild role will never be granted")
	}

	if cfg.StoreBackend == StoreBackendFile && cfg.Environment == "prod" {
		warnings = append(warnings, "STORE_BACKEND=file in prod - verification state lives on local disk only")
	}

	return warnings
}
