// internal/expiry/dates.go
package expiry

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	StorageLayout = "2006-01-02"
	DisplayLayout = "Jan 2, 2006"
)

var ErrDateParse = errors.New("invalid date")

// ParseResult carries a parsed date and whether the fallback to today was used.
type ParseResult struct {
	Date     time.Time
	Fallback bool
	Err      error
}

// Midnight drops the time-of-day component, keeping the wall-clock date of t.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseStorage(text string) (time.Time, error) {
	t, err := time.Parse(StorageLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrDateParse, text)
	}
	return t, nil
}

func FormatStorage(t time.Time) string {
	return Midnight(t).Format(StorageLayout)
}

// ParseDisplay accepts "Dec 25, 2024" as well as the zero-padded "Jan 05, 2025".
func ParseDisplay(text string) (time.Time, error) {
	t, err := time.Parse(DisplayLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected e.g. Dec 25, 2024", ErrDateParse, text)
	}
	return t, nil
}

func FormatDisplay(t time.Time) string {
	return Midnight(t).Format(DisplayLayout)
}

// StorageToDisplay converts "2024-12-25" into "Dec 25, 2024".
func StorageToDisplay(text string) (string, error) {
	t, err := ParseStorage(text)
	if err != nil {
		return "", err
	}
	return FormatDisplay(t), nil
}

// DisplayToStorage converts "Dec 25, 2024" into "2024-12-25".
func DisplayToStorage(text string) (string, error) {
	t, err := ParseDisplay(text)
	if err != nil {
		return "", err
	}
	return FormatStorage(t), nil
}

// ParseStorageDate never fails: malformed input yields today's date with
// Fallback set so the caller can surface the substitution.
func ParseStorageDate(text string, clock Clock) ParseResult {
	t, err := ParseStorage(text)
	if err != nil {
		return ParseResult{Date: Today(clock), Fallback: true, Err: err}
	}
	return ParseResult{Date: t}
}
