package timehelper

import (
	"fmt"
	"time"
)

const dateKeyLayout = "2006-01-02"

func GetTodaysDateString() string {
	return time.Now().Format(dateKeyLayout)
}

// ValidateDateKey checks that a date key is a real 'YYYY-MM-DD' date.
func ValidateDateKey(dateKey string) error {
	if _, err := time.Parse(dateKeyLayout, dateKey); err != nil {
		return fmt.Errorf("invalid date key %q: %w", dateKey, err)
	}
	return nil
}

// HasKickedOff reports whether a fixture with the given unix kickoff
// timestamp has already started.
func HasKickedOff(kickoffUnix int64, now time.Time) bool {
	if kickoffUnix <= 0 {
		return false
	}
	return !now.Before(time.Unix(kickoffUnix, 0))
}
