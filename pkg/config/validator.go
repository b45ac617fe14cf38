package config

import (
	"fmt"
	"strings"

	"github.com/payrawsa/pdf-to-text/pkg/utils"
)

// ConfigValidator validates application configuration
type ConfigValidator struct{}

// NewConfigValidator creates a configuration validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// Validate checks all configuration values
func (v *ConfigValidator) Validate(c *Config) error {
	var errors []string

	if err := v.validateNumericValues(c); err != nil {
		errors = append(errors, err.Error())
	}

	if err := v.validateLanguage(c.Language); err != nil {
		errors = append(errors, err.Error())
	}

	if err := v.validateLogLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return utils.NewValidationError("configuration validation failed",
			fmt.Errorf("validation errors: %s", strings.Join(errors, "; ")))
	}

	return nil
}

// validateNumericValues checks numeric parameters
func (v *ConfigValidator) validateNumericValues(c *Config) error {
	if c.DPI < 72 {
		return fmt.Errorf("dpi must be at least 72")
	}
	if c.DPI > 1200 {
		return fmt.Errorf("dpi should not exceed 1200")
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch size must be at least 1")
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk size must be at least 1")
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe timeout must be positive")
	}
	if c.BatchTimeout <= 0 {
		return fmt.Errorf("batch timeout must be positive")
	}

	return nil
}

// validateLanguage checks the Tesseract language code
func (v *ConfigValidator) validateLanguage(language string) error {
	if strings.TrimSpace(language) == "" {
		return fmt.Errorf("language cannot be empty")
	}
	return nil
}

// validateLogLevel checks the log level string
func (v *ConfigValidator) validateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}

	for _, valid := range validLevels {
		if strings.ToLower(level) == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid log level: %s", level)
}
