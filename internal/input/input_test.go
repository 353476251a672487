package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail44/advent/internal/report"
)

func TestReadReports(t *testing.T) {
	in := "7 6 4 2 1\n1  2\t7 8 9\n\n   \n5\n"

	levels, err := ReadReports(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []report.Level{
		{7, 6, 4, 2, 1},
		{1, 2, 7, 8, 9},
		{5},
	}, levels)
}

func TestReadReportsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		token string
		line  int
	}{
		{"word", "1 2 3\n4 x 6\n", "x", 2},
		{"negative", "1 -2 3\n", "-2", 1},
		{"overflow", "4294967296\n", "4294967296", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadReports(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.token, pe.Token)
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestReadColumns(t *testing.T) {
	in := "3   4\n4   3\nheader line with words\n2 5\n1 3 7\n3 9\n3 3\n"

	lists, err := ReadColumns(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 2, 3, 3}, lists.Left)
	assert.Equal(t, []int64{4, 3, 5, 9, 3}, lists.Right)
}

func TestReadColumnsMalformed(t *testing.T) {
	_, err := ReadColumns(strings.NewReader("1 2\n3 four\n"))
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), `"four"`)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day2.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n"), 0644))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	levels, err := ReadReports(f)
	require.NoError(t, err)
	assert.Len(t, levels, 1)

	_, err = Open(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
