package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// taskIDRegex matches task IDs like #7, 7, #007
var taskIDRegex = regexp.MustCompile(`^#?(\d+)$`)

// ParseTaskID parses a task ID string and returns its number.
// Accepts "#7", "7" and "#007", with surrounding whitespace.
// Returns ErrInvalidID if the format is invalid.
func ParseTaskID(s string) (int, error) {
	matches := taskIDRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, fmt.Errorf("%w: %q is not a valid task ID", ErrInvalidID, s)
	}

	num, err := strconv.Atoi(matches[1])
	if err != nil || num <= 0 {
		return 0, fmt.Errorf("%w: %q has invalid number", ErrInvalidID, s)
	}

	return num, nil
}

// FormatTaskID formats a task ID for display.
func FormatTaskID(id int) string {
	return "#" + strconv.Itoa(id)
}
