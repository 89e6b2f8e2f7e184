package config

import (
	"fmt"

	"github.com/driftdev/drift/internal/compiler"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// validateConfig checks the shape-level invariants of the configuration.
// Script key and command semantics are the compiler's concern.
func validateConfig(config *Config) error {
	switch compiler.Mode(config.Mode) {
	case compiler.ModeDevelopment, compiler.ModeProduction:
	default:
		return &ValidationError{
			Field:       "mode",
			Value:       config.Mode,
			Message:     fmt.Sprintf("unknown mode %q", config.Mode),
			Suggestions: []string{"use \"development\" or \"production\""},
		}
	}

	if config.Dev.Port < 1 || config.Dev.Port > 65535 {
		return &ValidationError{
			Field:       "dev.port",
			Value:       config.Dev.Port,
			Message:     fmt.Sprintf("port %d is outside 1-65535", config.Dev.Port),
			Suggestions: []string{"pick an unprivileged port such as 8080"},
		}
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return &ValidationError{
			Field:       "log.format",
			Value:       config.Log.Format,
			Message:     fmt.Sprintf("unknown log format %q", config.Log.Format),
			Suggestions: []string{"use \"text\" or \"json\""},
		}
	}

	return nil
}
