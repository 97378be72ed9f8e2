package config

import "fmt"

// ConfigurationError indicates a fatal configuration problem with no safe default
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%s): %s", e.Field, e.Message)
}
