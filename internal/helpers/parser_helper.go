package helpers

import (
	"strconv"
	"time"
)

const dayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD query parameter as a UTC day.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, time.UTC)
}

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}
