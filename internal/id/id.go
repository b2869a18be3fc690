package id

import (
	"fmt"
	"strconv"
	"strings"
)

const prefix = "#"

// Format renders a task id the way the CLI prints it, e.g. "#3".
func Format(n int) string {
	return prefix + strconv.Itoa(n)
}

// Parse accepts "3" or "#3".
func Parse(ref string) (int, error) {
	s := strings.TrimPrefix(strings.TrimSpace(ref), prefix)
	if s == "" {
		return 0, fmt.Errorf("invalid task reference %q: empty", ref)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task reference %q: not a number", ref)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid task reference %q: must be positive", ref)
	}
	return n, nil
}
