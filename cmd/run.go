package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rail44/advent/internal/log"
	"github.com/rail44/advent/internal/runner"
	"github.com/rail44/advent/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve days against their input files",
	Long: `Run solves each given day (all registered days when none are given)
against <input-dir>/dayN.txt, or the input set for that day in advent.toml,
and prints both answers. Days are solved concurrently.`,
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

		results, err := runner.New(cfg).Run(cmd.Context(), days)
		if err != nil {
			log.Error("run failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		plain := cfg.Plain || !ui.IsTerminal(os.Stdout)
		if err := ui.Render(os.Stdout, results, ui.Options{Plain: plain}); err != nil {
			log.Error("failed to write results", slog.String("error", err.Error()))
			os.Exit(1)
		}

		if failed := countFailed(results); failed > 0 {
			log.Error("some days failed", slog.Int("failed", failed), slog.Int("total", len(results)))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func countFailed(results []runner.Result) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}
