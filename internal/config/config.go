package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"monthly-ledger/internal/ledger"
	"monthly-ledger/internal/money"
)

type Theme struct {
	Income  string `yaml:"income"`
	Expense string `yaml:"expense"`
	Neutral string `yaml:"neutral"`
	Accent  string `yaml:"accent"`
}

type Config struct {
	Locale    string `yaml:"locale"`
	GraphMode string `yaml:"graph_mode"`
	ExportDir string `yaml:"export_dir"`
	LogFile   string `yaml:"log_file"`
	Debug     bool   `yaml:"debug"`
	Theme     Theme  `yaml:"theme"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func Default() *Config {
	return &Config{
		Locale:    money.DefaultLocale,
		GraphMode: string(ledger.United),
		ExportDir: ".",
		LogFile:   "debug.log",
		Theme: Theme{
			Income:  "#00B050",
			Expense: "#FF0000",
			Neutral: "#FFC000",
			Accent:  "#875FFF",
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".monthly-ledger", "config.yaml")
}

// Load reads path over the defaults and then applies LEDGER_* environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	cfg.Locale = getEnv("LEDGER_LOCALE", cfg.Locale)
	cfg.GraphMode = getEnv("LEDGER_GRAPH_MODE", cfg.GraphMode)
	cfg.ExportDir = getEnv("LEDGER_EXPORT_DIR", cfg.ExportDir)
	cfg.LogFile = getEnv("LEDGER_LOG_FILE", cfg.LogFile)
	cfg.Debug = getEnvBool("LEDGER_DEBUG", cfg.Debug)

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if _, err := language.Parse(c.Locale); err != nil {
		errs = append(errs, fmt.Sprintf("invalid locale '%s': %v", c.Locale, err))
	}

	if _, err := ledger.ParseGraphMode(c.GraphMode); err != nil {
		errs = append(errs, fmt.Sprintf("invalid graph mode '%s': must be one of [%s %s]", c.GraphMode, ledger.United, ledger.Separate))
	}

	if c.ExportDir == "" {
		errs = append(errs, "export directory cannot be empty")
	} else if info, err := os.Stat(c.ExportDir); err == nil && !info.IsDir() {
		errs = append(errs, fmt.Sprintf("export directory '%s' is not a directory", c.ExportDir))
	}

	if c.LogFile == "" {
		errs = append(errs, "log file cannot be empty")
	}

	colors := []struct {
		name  string
		value string
	}{
		{"income", c.Theme.Income},
		{"expense", c.Theme.Expense},
		{"neutral", c.Theme.Neutral},
		{"accent", c.Theme.Accent},
	}
	for _, col := range colors {
		if !hexColor.MatchString(col.value) {
			errs = append(errs, fmt.Sprintf("invalid %s colour '%s': must look like #RRGGBB", col.name, col.value))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Mode is the configured graph mode, united when unset or invalid.
func (c *Config) Mode() ledger.GraphMode {
	m, err := ledger.ParseGraphMode(c.GraphMode)
	if err != nil {
		return ledger.United
	}
	return m
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
