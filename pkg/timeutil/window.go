// Package timeutil parses human-friendly day windows for streak and report
// scans.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
		"m":     30,
		"mo":    30,
		"month": 30,
	}
)

// ParseWindow parses a window string (for example "30d", "4w", or "1w3d")
// into a day count along with a canonical, compact representation. Empty
// input returns 0 days, meaning use the configured default.
func ParseWindow(input string) (int, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, "", nil
	}

	// A bare number is a day count.
	if days, err := strconv.Atoi(trimmed); err == nil {
		if days <= 0 {
			return 0, "", fmt.Errorf("window must be greater than zero")
		}
		return days, FormatWindow(days), nil
	}

	remaining := strings.ToLower(trimmed)
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}

		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += value * base

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}

	return total, FormatWindow(total), nil
}

// FormatWindow renders a day count using week and day tokens.
func FormatWindow(days int) string {
	if days <= 0 {
		return "0d"
	}

	var parts []string
	if weeks := days / 7; weeks > 0 {
		parts = append(parts, fmt.Sprintf("%dw", weeks))
	}
	if rest := days % 7; rest > 0 {
		parts = append(parts, fmt.Sprintf("%dd", rest))
	}
	return strings.Join(parts, "")
}
