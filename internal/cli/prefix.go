// Package cli provides terminal output and input helpers for todo.
package cli

import (
	"fmt"
	"strings"
)

// MatchCommand resolves a possibly abbreviated word against a list of
// commands. An exact (case-insensitive) match wins; otherwise the prefix must
// select exactly one command.
func MatchCommand(prefix string, commands []string) (string, error) {
	prefix = strings.ToLower(prefix)

	var matches []string
	for _, cmd := range commands {
		lower := strings.ToLower(cmd)
		if lower == prefix {
			return cmd, nil
		}
		if strings.HasPrefix(lower, prefix) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown command %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous command %q matches: %s", prefix, strings.Join(matches, ", "))
	}
}
