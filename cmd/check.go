package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rail44/advent/internal/log"
	"github.com/rail44/advent/internal/runner"
	"github.com/rail44/advent/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [day...]",
	Short: "Verify solvers against the worked examples",
	Long: `Check solves the example input from each day's puzzle description and
compares both parts with the expected answers. It exits non-zero on any
mismatch, which makes it a quick smoke test before running real input.`,
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

		results, err := runner.New(cfg).Check(cmd.Context(), days)
		if err != nil {
			log.Error("check failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		plain := cfg.Plain || !ui.IsTerminal(os.Stdout)
		if err := ui.Render(os.Stdout, results, ui.Options{Plain: plain}); err != nil {
			log.Error("failed to write results", slog.String("error", err.Error()))
			os.Exit(1)
		}

		if failed := countFailed(results); failed > 0 {
			log.Error("sample mismatch", slog.Int("failed", failed), slog.Int("total", len(results)))
			os.Exit(1)
		}
		log.Info("all samples passed", slog.Int("days", len(results)))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
