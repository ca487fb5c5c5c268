package helpers

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2025-07-28")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Fatalf("expected %v, got %v", want, day)
	}
	if day.Location() != time.UTC {
		t.Fatal("parsed day must be UTC")
	}

	for _, bad := range []string{"", "28-07-2025", "2025/07/28", "not-a-date"} {
		if _, err := ParseDay(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
