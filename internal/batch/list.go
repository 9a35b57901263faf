package batch

import (
	"fmt"
	"os"
	"strings"
)

// ReadDocumentList reads document names from a file, one per line.
// Blank lines and lines starting with '#' are ignored, as is any directory
// part of a name. Duplicates are kept; the processor removes them.
func ReadDocumentList(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read document list: %w", err)
	}

	var names []string
	for _, line := range splitLines(string(content)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.LastIndexAny(line, `/\`); i >= 0 {
			line = line[i+1:]
		}
		if line != "" {
			names = append(names, line)
		}
	}

	return names, nil
}

// splitLines splits a string by newlines, dropping carriage returns
func splitLines(s string) []string {
	var lines []string
	var current strings.Builder
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current.String())
			current.Reset()
		} else if r != '\r' {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
