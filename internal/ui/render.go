// Package ui renders puzzle results for the terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/rail44/advent/internal/runner"
)

// Options controls how results are rendered
type Options struct {
	Plain bool // Use plain text output instead of a styled table
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	okStyle     = cellStyle.Foreground(lipgloss.Color("10"))
	failStyle   = cellStyle.Foreground(lipgloss.Color("9"))
	dimStyle    = cellStyle.Foreground(lipgloss.Color("241"))
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Render writes results to w
func Render(w io.Writer, results []runner.Result, opts Options) error {
	if opts.Plain {
		return renderPlain(w, results)
	}
	_, err := fmt.Fprintln(w, renderTable(results))
	return err
}

func renderPlain(w io.Writer, results []runner.Result) error {
	for _, r := range results {
		var err error
		switch {
		case r.Err != nil:
			_, err = fmt.Fprintf(w, "day %d: error: %v\n", r.Day, r.Err)
		case r.Want != nil:
			_, err = fmt.Fprintf(w, "day %d part 1: %d (want %d)\nday %d part 2: %d (want %d)\n",
				r.Day, r.Answer.Part1, r.Want.Part1, r.Day, r.Answer.Part2, r.Want.Part2)
		default:
			_, err = fmt.Fprintf(w, "day %d part 1: %d\nday %d part 2: %d\n",
				r.Day, r.Answer.Part1, r.Day, r.Answer.Part2)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func renderTable(results []runner.Result) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers("DAY", "TITLE", "PART 1", "PART 2", "TIME", "STATUS")

	for _, r := range results {
		part1, part2 := strconv.FormatInt(r.Answer.Part1, 10), strconv.FormatInt(r.Answer.Part2, 10)
		if r.Err != nil {
			part1, part2 = "-", "-"
		}
		t.Row(strconv.Itoa(r.Day), r.Title, part1, part2, r.Duration.Round(time.Microsecond).String(), Status(r))
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if row < 0 || row >= len(results) {
			return cellStyle
		}
		if col == 5 {
			if results[row].Failed() {
				return failStyle
			}
			return okStyle
		}
		if col == 4 {
			return dimStyle
		}
		return cellStyle
	})
	return t.Render()
}

// Status summarizes a result in a single word or short phrase
func Status(r runner.Result) string {
	switch {
	case r.Err != nil:
		return "error: " + r.Err.Error()
	case r.Want != nil && *r.Want != r.Answer:
		return fmt.Sprintf("mismatch (want %d/%d)", r.Want.Part1, r.Want.Part2)
	case r.Want != nil:
		return "pass"
	default:
		return "ok"
	}
}
