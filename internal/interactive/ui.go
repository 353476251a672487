package interactive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rail44/advent/internal/checksum"
	"github.com/rail44/advent/internal/input"
	"github.com/rail44/advent/internal/puzzle"
)

type status int

const (
	statusWatching status = iota
	statusSolving
	statusError
	statusSuccess
)

// maxLogLines is how many recent log lines the view keeps
const maxLogLines = 5

type model struct {
	filePath string
	solver   puzzle.Solver
	opts     puzzle.Options
	readFile func(string) ([]byte, error)

	status       status
	answer       puzzle.Answer
	err          error
	lastChecksum string
	lastSolved   time.Time
	duration     time.Duration
	logs         []logMsg

	// UI state
	spinner int
	width   int
	height  int
}

type fileChangedMsg struct{}

type solvedMsg struct {
	answer   puzzle.Answer
	checksum string
	duration time.Duration
	err      error
}

type unchangedMsg struct{}

type logMsg struct {
	level slog.Level
	line  string
}

type tickMsg time.Time

// NewModel creates the watch UI for one day's input file
func NewModel(filePath string, solver puzzle.Solver, opts puzzle.Options) tea.Model {
	return model{
		filePath: filePath,
		solver:   solver,
		opts:     opts,
		readFile: os.ReadFile,
		status:   statusWatching,
	}
}

// FileChanged is sent whenever the watched input may have changed
func FileChanged() tea.Msg {
	return fileChangedMsg{}
}

// LogLine carries a formatted log line into the UI
func LogLine(level slog.Level, line string) tea.Msg {
	return logMsg{level: level, line: line}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			// Force a re-solve even if the content is unchanged
			m.lastChecksum = ""
			m.status = statusSolving
			return m, m.solve()
		}

	case fileChangedMsg:
		m.status = statusSolving
		return m, m.solve()

	case unchangedMsg:
		if m.err != nil {
			m.status = statusError
		} else if m.lastChecksum != "" {
			m.status = statusSuccess
		} else {
			m.status = statusWatching
		}
		return m, nil

	case solvedMsg:
		m.lastSolved = time.Now()
		m.duration = msg.duration
		m.err = msg.err
		if msg.err != nil {
			m.status = statusError
			m.lastChecksum = ""
			return m, nil
		}
		m.status = statusSuccess
		m.answer = msg.answer
		m.lastChecksum = msg.checksum
		return m, nil

	case logMsg:
		m.logs = append(m.logs, msg)
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		return m, nil

	case tickMsg:
		if m.status == statusSolving {
			m.spinner++
		}
		return m, tick()
	}

	return m, nil
}

// solve reads the input and solves it unless its checksum matches the last success
func (m model) solve() tea.Cmd {
	last := m.lastChecksum
	return func() tea.Msg {
		start := time.Now()

		data, err := m.readFile(m.filePath)
		if err != nil {
			return solvedMsg{err: fmt.Errorf("%w: %w", input.ErrParse, err)}
		}

		sum := checksum.Calculate(data)
		if sum == last {
			return unchangedMsg{}
		}

		answer, err := m.solver.Solve(context.Background(), bytes.NewReader(data), m.opts)
		return solvedMsg{
			answer:   answer,
			checksum: sum,
			duration: time.Since(start).Round(time.Microsecond),
			err:      err,
		}
	}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m model) View() string {
	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)
	s.WriteString(headerStyle.Render(fmt.Sprintf("Day %d: %s", m.solver.Day(), m.solver.Title())))
	s.WriteString("\n\n")

	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(fileStyle.Render(fmt.Sprintf("Watching: %s", m.filePath)))
	s.WriteString("\n\n")

	statusStyle := lipgloss.NewStyle().Bold(true)
	switch m.status {
	case statusWatching:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("10")).Render("Watching for changes..."))
	case statusSolving:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("12")).Render(
			fmt.Sprintf("%s Solving...", spinnerFrames[m.spinner%len(spinnerFrames)])))
	case statusSuccess:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("10")).Render("✓ Solved"))
		s.WriteString(fmt.Sprintf(" (%s, checksum %s)", m.duration, m.lastChecksum))
		s.WriteString("\n\n")
		s.WriteString(fmt.Sprintf("  Part 1: %d\n  Part 2: %d", m.answer.Part1, m.answer.Part2))
	case statusError:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("9")).Render("✗ Error: "))
		if m.err != nil {
			s.WriteString(m.err.Error())
		}
	}
	s.WriteString("\n\n")

	if len(m.logs) > 0 {
		logStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		for _, l := range m.logs {
			if l.level >= slog.LevelWarn {
				s.WriteString(errStyle.Render(l.line))
			} else {
				s.WriteString(logStyle.Render(l.line))
			}
			s.WriteString("\n")
		}
		s.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(helpStyle.Render("Press 'r' to re-solve, 'q' to quit"))

	return s.String()
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
