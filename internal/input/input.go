// Package input reads puzzle input files into the values the solvers work on.
//
// Every failure, from a missing file to a malformed number, is reported
// as ErrParse so callers can treat it as a single fatal condition.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rail44/advent/internal/location"
	"github.com/rail44/advent/internal/report"
)

// ErrParse is the condition every read or parse failure matches
var ErrParse = errors.New("parsing error")

// maxLineSize bounds a single input line
const maxLineSize = 1024 * 1024

// ParseError describes a token that could not be read as a number
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid number %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrParse
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Open opens a puzzle input file
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return f, nil
}

// forFields calls onFields with the whitespace separated tokens of each line
func forFields(r io.Reader, onFields func(lineNo int, fields []string) error) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for s.Scan() {
		lineNo++
		if err := onFields(lineNo, strings.Fields(s.Text())); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}

// ReadReports reads one level per non-blank line
func ReadReports(r io.Reader) ([]report.Level, error) {
	var levels []report.Level
	err := forFields(r, func(lineNo int, fields []string) error {
		if len(fields) == 0 {
			return nil
		}
		level := make(report.Level, 0, len(fields))
		for _, tok := range fields {
			v, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				return &ParseError{Line: lineNo, Token: tok, Err: err}
			}
			level = append(level, uint32(v))
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return levels, nil
}

// ReadColumns reads lines of exactly two numbers into the left and right
// lists. Lines with any other number of tokens are skipped.
func ReadColumns(r io.Reader) (location.Lists, error) {
	var lists location.Lists
	err := forFields(r, func(lineNo int, fields []string) error {
		if len(fields) != 2 {
			return nil
		}
		left, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return &ParseError{Line: lineNo, Token: fields[0], Err: err}
		}
		right, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return &ParseError{Line: lineNo, Token: fields[1], Err: err}
		}
		lists.Left = append(lists.Left, left)
		lists.Right = append(lists.Right, right)
		return nil
	})
	if err != nil {
		return location.Lists{}, err
	}
	return lists, nil
}
