package logger

import (
	"errors"
	"strings"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// ErrorEntry is one link of an error chain, ready for display.
type ErrorEntry struct {
	Message string
}

// collectErrorEntries walks the error chain outermost-first. zerr errors
// contribute their own message; the first non-zerr error contributes its full
// Error() text and terminates the walk.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	for current := err; current != nil; {
		if m, ok := current.(messager); ok {
			entries = append(entries, ErrorEntry{Message: m.Message()})
			current = errors.Unwrap(current)
		} else {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}
	}
	return entries
}

// formatErrorEntries renders the chain hierarchically, with the outermost
// message first and the causes indented beneath a "Caused by:" header.
func formatErrorEntries(entries []ErrorEntry) string {
	var formatted []string

	for i, entry := range entries {
		lines := strings.Split(entry.Message, "\n")

		if i == 0 {
			formatted = append(formatted, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formatted = append(formatted, "       "+line)
			}
			continue
		}

		if i == 1 {
			formatted = append(formatted, "", "  Caused by:")
		}
		formatted = append(formatted, "    → "+lines[0])
		for _, line := range lines[1:] {
			formatted = append(formatted, "      "+line)
		}
	}

	return strings.Join(formatted, "\n")
}
