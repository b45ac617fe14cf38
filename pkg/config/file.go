package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/payrawsa/pdf-to-text/pkg/constants"
	"github.com/payrawsa/pdf-to-text/pkg/utils"
)

const (
	ConfigFileName = "config.json"
	AppDirName     = ".pdf-to-text"
)

// ConfigFile represents the JSON configuration file structure.
// Only durable settings are persisted; everything else is runtime-only.
type ConfigFile struct {
	OutputDir    string `json:"output_dir"`
	Language     string `json:"language"`
	TessdataPath string `json:"tessdata_path"`
}

// GetConfigDir returns the user configuration directory (~/.pdf-to-text)
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", utils.WrapError(err, utils.ErrorTypeIO, "failed to get user home directory")
	}
	return filepath.Join(homeDir, AppDirName), nil
}

// GetConfigFilePath returns the full path to the configuration file
func GetConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// LoadConfig loads configuration from file or creates default if not exists
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to get config file path")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfigFile(configPath)
	}

	return loadConfigFromFile(configPath)
}

// createDefaultConfigFile creates a default configuration file
func createDefaultConfigFile(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, constants.DefaultDirPermission); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to create config directory")
	}

	configFile := &ConfigFile{
		OutputDir:    DefaultOutputDir,
		Language:     constants.DefaultLanguage,
		TessdataPath: "",
	}

	if err := saveConfigFile(configPath, configFile); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to save default config file")
	}

	fmt.Printf("✅ Created default configuration file: %s\n", configPath)

	return configFileToConfig(configFile), nil
}

// loadConfigFromFile loads configuration from an existing file
func loadConfigFromFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeIO, "failed to read config file")
	}

	var configFile ConfigFile
	if err := json.Unmarshal(data, &configFile); err != nil {
		return nil, utils.WrapError(err, utils.ErrorTypeValidation, "failed to parse config file")
	}

	return configFileToConfig(&configFile), nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config) error {
	configPath, err := GetConfigFilePath()
	if err != nil {
		return err
	}
	return saveConfigFile(configPath, configToConfigFile(config))
}

// saveConfigFile saves ConfigFile to disk
func saveConfigFile(configPath string, configFile *ConfigFile) error {
	data, err := json.MarshalIndent(configFile, "", "  ")
	if err != nil {
		return utils.WrapError(err, utils.ErrorTypeValidation, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, constants.DefaultFilePermission); err != nil {
		return utils.WrapError(err, utils.ErrorTypeIO, "failed to write config file")
	}

	return nil
}

// configFileToConfig converts ConfigFile to Config, applying runtime defaults
func configFileToConfig(cf *ConfigFile) *Config {
	config := newBaseConfig()
	if cf.OutputDir != "" {
		config.OutputDir = cf.OutputDir
	}
	if cf.Language != "" {
		config.Language = cf.Language
	}
	config.TessdataPath = cf.TessdataPath
	return config
}

// configToConfigFile converts Config to ConfigFile
func configToConfigFile(c *Config) *ConfigFile {
	return &ConfigFile{
		OutputDir:    c.OutputDir,
		Language:     c.Language,
		TessdataPath: c.TessdataPath,
	}
}

// GetConfigValue gets a specific configuration value by key
func GetConfigValue(key string) (interface{}, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	switch key {
	case "output_dir":
		return config.OutputDir, nil
	case "language":
		return config.Language, nil
	case "tessdata_path":
		return config.TessdataPath, nil
	default:
		return nil, utils.NewValidationError(fmt.Sprintf("unknown config key: %s", key), nil)
	}
}

// SetConfigValue sets a specific configuration value by key
func SetConfigValue(key, value string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "output_dir":
		config.OutputDir = value
	case "language":
		config.Language = value
	case "tessdata_path":
		config.TessdataPath = value
	default:
		return utils.NewValidationError(fmt.Sprintf("unknown config key: %s", key), nil)
	}

	return SaveConfig(config)
}

// ListConfigKeys returns all available configuration keys
func ListConfigKeys() []string {
	return []string{
		"output_dir",
		"language",
		"tessdata_path",
	}
}
