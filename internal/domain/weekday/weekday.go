package weekday

import (
	"errors"
	"strconv"
	"strings"
)

// Days lists the week in the order used for offsets.
var Days = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var (
	// ErrUnknownDay is returned for names outside Days.
	ErrUnknownDay = errors.New("invalid day")
	// ErrNegative is returned for offsets below zero.
	ErrNegative = errors.New("offset must be non-negative")
	// ErrNotANumber is returned when the offset does not parse as an integer.
	ErrNotANumber = errors.New("offset is not an integer")
)

// Index returns the position of name in Days. Case and surrounding space are ignored.
func Index(name string) (int, error) {
	name = strings.TrimSpace(name)
	for i, d := range Days {
		if strings.EqualFold(d, name) {
			return i, nil
		}
	}
	return 0, ErrUnknownDay
}

// ParseOffset parses a non-negative day count.
func ParseOffset(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotANumber
	}
	if n < 0 {
		return 0, ErrNegative
	}
	return n, nil
}

// Add returns the weekday n days after Days[start].
func Add(start, n int) string {
	return Days[(start+n%7)%7]
}
