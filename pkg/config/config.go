package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"leadboard/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	Endpoint   string            `mapstructure:"endpoint"`
	FetchLimit int               `mapstructure:"fetch_limit"`
	PageSize   int               `mapstructure:"page_size"`
	LogLevel   string            `mapstructure:"log_level"`
	TokenFile  string            `mapstructure:"token_file"`
	KeyMap     map[string]string `mapstructure:"keymap"`
	StylesFile string            `mapstructure:"styles_file"`
}

// Styles holds the application colors and styling information
type Styles struct {
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	NormalTextColor   string `json:"normal_text_color"`
	MutedTextColor    string `json:"muted_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`

	// Per-status colors for the status column
	StatusNewColor  string `json:"status_new_color"`
	StatusWonColor  string `json:"status_won_color"`
	StatusLostColor string `json:"status_lost_color"`
}

// Dir returns the configuration directory, ~/.config/leadboard.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "leadboard"), nil
}

// Load loads the application configuration from the specified path, or
// from the default location when configPath is empty. A missing config
// file is created with defaults. LEADBOARD_* environment variables
// override file values.
func Load(configPath string) (Config, Styles, error) {
	configDir, err := Dir()
	if err != nil {
		return Config{}, Styles{}, err
	}

	config := Config{
		Endpoint:   "http://localhost:8080/v1",
		FetchLimit: 500,
		PageSize:   10,
		LogLevel:   "info",
		TokenFile:  filepath.Join(configDir, "session.jwt"),
		KeyMap:     keymaps.GetDefaultKeyMappings(),
		StylesFile: filepath.Join(configDir, "styles.json"),
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix("LEADBOARD")
	v.AutomaticEnv()

	v.SetDefault("endpoint", config.Endpoint)
	v.SetDefault("fetch_limit", config.FetchLimit)
	v.SetDefault("page_size", config.PageSize)
	v.SetDefault("log_level", config.LogLevel)
	v.SetDefault("token_file", config.TokenFile)
	v.SetDefault("styles_file", config.StylesFile)

	if configPath == "" {
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
		configPath = filepath.Join(configDir, "config.json")
	} else {
		v.SetConfigFile(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		if !isNotFound(err) {
			return config, Styles{}, fmt.Errorf("error reading config: %w", err)
		}
		// Config file not found, create default config
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return config, Styles{}, err
		}
		if err := v.WriteConfigAs(configPath); err != nil {
			return config, Styles{}, err
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, Styles{}, fmt.Errorf("error parsing config: %w", err)
	}
	if config.KeyMap == nil {
		config.KeyMap = keymaps.GetDefaultKeyMappings()
	}

	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

func isNotFound(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return os.IsNotExist(err)
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		MutedTextColor:    "243",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		StatusNewColor:    "4",
		StatusWonColor:    "2",
		StatusLostColor:   "1",
	}

	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		// If the file doesn't exist, create it with default values
		if os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(stylesPath), 0755); err != nil {
				return defaultStyles, err
			}

			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}

			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}

			return defaultStyles, nil
		}
		return defaultStyles, err
	}

	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}
