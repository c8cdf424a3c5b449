package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseClock converts an "HH:MM" string to minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: time %q is not in HH:MM format", ErrValidation, s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: time %q is not in HH:MM format", ErrValidation, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: time %q is not in HH:MM format", ErrValidation, s)
	}
	return hours*60 + minutes, nil
}

// overlaps reports whether the half-open minute intervals [aStart,aEnd)
// and [bStart,bEnd) intersect. Touching endpoints do not conflict.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
