package checksum

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Calculate computes a checksum for puzzle input after normalizing it
func Calculate(content []byte) string {
	h := fnv.New32a()
	h.Write([]byte(Normalize(string(content))))

	// Return as 8-character hex string
	return fmt.Sprintf("%08x", h.Sum32())
}

// Normalize strips trailing whitespace from every line and drops
// trailing blank lines, so editor noise does not change the checksum
func Normalize(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
