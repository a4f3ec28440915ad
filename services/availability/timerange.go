package availability

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat reports a malformed "HH:MM-HH:MM" string. Malformed
// slots loaded from the database are dropped defensively, never surfaced.
var ErrInvalidFormat = errors.New("invalid time range format")

var rangePattern = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)

// TimeRange is a continuous block of a single day, measured in minutes
// from midnight. Invariant: 0 <= Start < End <= 1440.
type TimeRange struct {
	Start int
	End   int
}

// ParseRange parses a canonical "HH:MM-HH:MM" string.
func ParseRange(s string) (TimeRange, error) {
	if !rangePattern.MatchString(s) {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	parts := strings.SplitN(s, "-", 2)
	start, err := ToMinutes(parts[0])
	if err != nil {
		return TimeRange{}, err
	}
	end, err := ToMinutes(parts[1])
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

// String renders the canonical zero-padded 24-hour form.
func (r TimeRange) String() string {
	return FormatMinutes(r.Start) + "-" + FormatMinutes(r.End)
}

// Display renders the user-facing "h:mm AM/PM - h:mm AM/PM" form.
func (r TimeRange) Display() string {
	return formatAMPM(r.Start) + " - " + formatAMPM(r.End)
}

// ToMinutes converts "HH:MM" to minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hhmm)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hhmm)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hhmm)
	}
	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hhmm)
	}
	return hours*60 + minutes, nil
}

// FormatMinutes converts minutes since midnight back to zero-padded "HH:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// formatAMPM converts minutes since midnight to "h:mm AM/PM".
func formatAMPM(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	hour := hours % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, mins, period)
}

// parseClock accepts either "HH:MM" (24-hour) or "h:mm AM/PM" and returns
// the zero-padded 24-hour form.
func parseClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	upper := strings.ToUpper(s)

	period := ""
	switch {
	case strings.HasSuffix(upper, "AM"):
		period = "AM"
	case strings.HasSuffix(upper, "PM"):
		period = "PM"
	}
	if period != "" {
		upper = strings.TrimSpace(strings.TrimSuffix(upper, period))
	}

	parts := strings.SplitN(upper, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	switch period {
	case "AM":
		if hours < 1 || hours > 12 {
			return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours < 1 || hours > 12 {
			return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		if hours != 12 {
			hours += 12
		}
	default:
		if hours < 0 || hours > 24 {
			return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

// SplitLabel splits a selection time label into 24-hour start and end
// times. It accepts both the canonical "HH:MM-HH:MM" form and the display
// "h:mm AM/PM - h:mm AM/PM" form.
func SplitLabel(label string) (string, string, error) {
	if rangePattern.MatchString(label) {
		parts := strings.SplitN(label, "-", 2)
		return parts[0], parts[1], nil
	}

	parts := strings.SplitN(label, " - ", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFormat, label)
	}
	start, err := parseClock(parts[0])
	if err != nil {
		return "", "", err
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}

// DisplayLabel converts a canonical "HH:MM-HH:MM" string to its display
// form; the input is returned unchanged when it does not parse.
func DisplayLabel(slot string) string {
	r, err := ParseRange(slot)
	if err != nil {
		return slot
	}
	return r.Display()
}
