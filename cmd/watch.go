package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rail44/advent/internal/interactive"
	"github.com/rail44/advent/internal/log"
	"github.com/rail44/advent/internal/puzzle"
)

var watchCmd = &cobra.Command{
	Use:   "watch <day>",
	Short: "Watch a day's input file and re-solve it on every save",
	Long: `Watch monitors the input file of one day and solves it again whenever
the file is saved. Saves that leave the content unchanged are skipped.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		days, err := parseDays(args)
		if err != nil {
			log.Error("invalid arguments", slog.String("error", err.Error()))
			os.Exit(1)
		}

		cfg, err := loadConfig()
		if err != nil {
			log.Error("failed to load configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}

		solver, ok := puzzle.Lookup(days[0])
		if !ok {
			log.Error("no solver registered", slog.Int("day", days[0]))
			os.Exit(1)
		}

		filePath := cfg.InputPath(solver.Day())
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			log.Error("input file does not exist", slog.String("path", filePath))
			os.Exit(1)
		}

		if err := runInteractiveMode(cmd.Context(), filePath, solver, puzzle.Options{Workers: cfg.Workers}); err != nil {
			log.Error("watch failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runInteractiveMode(ctx context.Context, filePath string, solver puzzle.Solver, opts puzzle.Options) error {
	m := interactive.NewModel(filePath, solver, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Log lines go into the UI instead of the terminal
	logger := log.NewCallbackLogger(func(level slog.Level, line string) {
		p.Send(interactive.LogLine(level, line))
	}, log.GetCurrentLevel())

	watcher, err := interactive.NewFileWatcher(filePath, func() {
		p.Send(interactive.FileChanged())
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go watcher.Start(ctx)

	// Trigger the initial solve
	go p.Send(interactive.FileChanged())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	return nil
}
