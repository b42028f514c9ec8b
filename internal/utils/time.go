package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hkhosravani/sleepbetter/internal/constants"
)

// FormatHours converts decimal hours to h:mm display form (7.5 -> "7:30").
func FormatHours(hours float64) string {
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%d:%02d", h, m)
}

// ParseDuration parses a sleep duration given as either "h:mm" or a plain
// decimal ("7:30" or "7.5"). Anything else is rejected.
func ParseDuration(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		if h < 0 || m < 0 || m > 59 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return float64(h) + float64(m)/60, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q (expected h:mm or decimal): %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("duration must be non-negative, got %q", s)
	}
	return v, nil
}

// ParseClock converts an HH:MM wall-clock string to decimal hours from
// midnight ("23:30" -> 23.5).
func ParseClock(s string) (float64, error) {
	t, err := time.Parse(constants.ClockFormat, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM): %w", s, err)
	}
	return float64(t.Hour()) + float64(t.Minute())/60, nil
}

// FormatClock converts decimal hours to an HH:MM wall-clock string. Negative
// values wrap to the previous evening (-0.5 -> "23:30").
func FormatClock(decimal float64) string {
	for decimal < 0 {
		decimal += 24
	}
	h := int(decimal) % 24
	m := int(math.Round((decimal - math.Trunc(decimal)) * 60))
	if m == 60 {
		h = (h + 1) % 24
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ResolveDate expands the date shorthands accepted by logging commands:
// "today", "yesterday", MM-DD (current year), or a full YYYY-MM-DD.
func ResolveDate(s string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return now.Format(constants.DateFormat), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(constants.DateFormat), nil
	}
	if len(s) == 5 && strings.Contains(s, "-") {
		s = fmt.Sprintf("%d-%s", now.Year(), s)
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD, MM-DD, today, or yesterday): %w", s, err)
	}
	return s, nil
}
