package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rail44/advent/internal/config"
	"github.com/rail44/advent/internal/log"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Run daily puzzle solvers against their input files",
	Long: `Advent runs the registered daily puzzle solvers. Each day reads a text
file of whitespace-separated numbers and prints one answer per part.

Settings are read from advent.toml, searched upward from the current
directory, and can be overridden by flags or ADVENT_* environment variables.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is advent.toml in the current or a parent directory)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: error|warn|info|debug|trace")
	rootCmd.PersistentFlags().String("input-dir", "", "directory holding dayN.txt input files")
	rootCmd.PersistentFlags().Int("workers", 0, "maximum number of concurrent workers")
	rootCmd.PersistentFlags().Bool("plain", false, "plain text output instead of a styled table")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("input_dir", rootCmd.PersistentFlags().Lookup("input-dir"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain"))

	viper.SetEnvPrefix("advent")
	viper.AutomaticEnv()
}

// loadConfig reads advent.toml and applies flag and environment overrides
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if viper.IsSet("log_level") {
		cfg.LogLevel = viper.GetString("log_level")
	}
	if viper.IsSet("input_dir") {
		dir, err := filepath.Abs(viper.GetString("input_dir"))
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %w", err)
		}
		cfg.InputDir = dir
	}
	if viper.IsSet("workers") {
		cfg.Workers = viper.GetInt("workers")
	}
	if viper.IsSet("plain") {
		cfg.Plain = viper.GetBool("plain")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setupLogging(cfg)
	if cfg.Path != "" {
		log.Debug("using config file", slog.String("path", cfg.Path))
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Error("invalid log level", slog.String("level", cfg.LogLevel))
		os.Exit(1)
	}
	if err := log.SetLevel(level); err != nil {
		log.Error("failed to set log level", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// parseDays converts day arguments like "2" or "day2" into numbers
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(a), "day"))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid day %q", a)
		}
		days = append(days, n)
	}
	return days, nil
}
