package wallpaper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxIntervalMinutes keeps the period well inside time.Duration (one year).
const maxIntervalMinutes = 365 * 24 * 60

// InputError reports an interval the user typed that is not a positive whole number of minutes.
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid interval %q: %s", e.Input, e.Reason)
}

// ParseInterval parses a rotation period given in whole minutes.
func ParseInterval(text string) (time.Duration, error) {
	trimmed := strings.TrimSpace(text)
	minutes, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &InputError{Input: text, Reason: "not a whole number of minutes"}
	}
	if minutes <= 0 {
		return 0, &InputError{Input: text, Reason: "must be greater than zero"}
	}
	if minutes > maxIntervalMinutes {
		return 0, &InputError{Input: text, Reason: "must be at most one year"}
	}
	return time.Duration(minutes) * time.Minute, nil
}

// FormatInterval renders a period the way ParseInterval accepts it.
func FormatInterval(d time.Duration) string {
	return strconv.Itoa(int(d / time.Minute))
}
