package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file searched for by Load
const FileName = "advent.toml"

const (
	DefaultInputDir = "inputs"
	DefaultLogLevel = "info"
	DefaultWorkers  = 8
)

// Config represents the complete configuration for advent
type Config struct {
	InputDir string `toml:"input_dir"`
	LogLevel string `toml:"log_level"`
	Workers  int    `toml:"workers"`
	Plain    bool   `toml:"plain"`

	// Per-day overrides keyed by day number
	Days map[string]DayConfig `toml:"days"`

	// Path of the loaded file, empty when running on defaults
	Path string `toml:"-"`
}

// DayConfig overrides settings for a single day
type DayConfig struct {
	Input string `toml:"input"`
}

// Default returns the configuration used when no advent.toml exists
func Default() *Config {
	return &Config{
		InputDir: DefaultInputDir,
		LogLevel: DefaultLogLevel,
		Workers:  DefaultWorkers,
	}
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load loads configuration from advent.toml, searching upward from
// startPath. A missing file is not an error; defaults are returned with
// paths relative to startPath.
func Load(startPath string) (*Config, error) {
	configPath, found, err := findConfigFile(startPath)
	if err != nil {
		return nil, err
	}
	if found {
		return LoadFile(configPath)
	}

	baseDir, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	if info, err := os.Stat(baseDir); err == nil && !info.IsDir() {
		baseDir = filepath.Dir(baseDir)
	}

	cfg := Default()
	if err := cfg.finish(baseDir); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads configuration from the given TOML file. Relative paths
// inside it are resolved against the file's directory.
func LoadFile(configPath string) (*Config, error) {
	configPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(configData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Path = configPath

	if err := cfg.finish(filepath.Dir(configPath)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finish validates the configuration and resolves its paths against baseDir
func (c *Config) finish(baseDir string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.InputDir = normalizePath(expandEnvVars(c.InputDir), baseDir)
	for k, d := range c.Days {
		if d.Input != "" {
			d.Input = normalizePath(expandEnvVars(d.Input), baseDir)
			c.Days[k] = d
		}
	}
	return nil
}

// findConfigFile searches for advent.toml starting from the given path
func findConfigFile(startPath string) (string, bool, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", false, fmt.Errorf("failed to get absolute path: %w", err)
	}

	// If startPath is a file, start from its directory
	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			return "", false, nil
		}
		currentDir = parentDir
	}
}

// expandEnvVars expands ${VAR_NAME} environment variables in the string.
// Unset variables are left as written and reported by Validate.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		value := os.Getenv(match[2 : len(match)-1])
		if value == "" {
			return match
		}
		return value
	})
}

// Validate checks that all fields hold usable values
func (c *Config) Validate() error {
	var errors []string

	if c.Workers < 1 {
		errors = append(errors, "workers must be at least 1")
	}
	switch strings.ToLower(c.LogLevel) {
	case "error", "warn", "info", "debug", "trace":
	default:
		errors = append(errors, fmt.Sprintf("unknown log_level %q", c.LogLevel))
	}
	if c.InputDir == "" {
		errors = append(errors, "input_dir must not be empty")
	}
	for k, d := range c.Days {
		if n, err := strconv.Atoi(k); err != nil || n < 1 {
			errors = append(errors, fmt.Sprintf("days.%s: day must be a positive number", k))
		}
		if m := envVarPattern.FindStringSubmatch(expandEnvVars(d.Input)); m != nil {
			errors = append(errors, fmt.Sprintf("environment variable %s is not set (required by days.%s.input)", m[1], k))
		}
	}
	if m := envVarPattern.FindStringSubmatch(expandEnvVars(c.InputDir)); m != nil {
		errors = append(errors, fmt.Sprintf("environment variable %s is not set (required by input_dir)", m[1]))
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, ", "))
	}
	return nil
}

// normalizePath converts relative paths to absolute paths based on baseDir
func normalizePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// InputPath returns the input file for day
func (c *Config) InputPath(day int) string {
	if d, ok := c.Days[strconv.Itoa(day)]; ok && d.Input != "" {
		return d.Input
	}
	return filepath.Join(c.InputDir, fmt.Sprintf("day%d.txt", day))
}
