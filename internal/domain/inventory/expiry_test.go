package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyExpiry(t *testing.T) {
	today := date(2024, 3, 10)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      ExpiryStatus
	}{
		{"expired yesterday", date(2024, 3, 9), ExpiryExpired},
		{"expired long ago", date(2023, 12, 1), ExpiryExpired},
		{"expires today", date(2024, 3, 10), ExpiryExpiring},
		{"expires at window edge", date(2024, 3, 13), ExpiryExpiring},
		{"expires just past window", date(2024, 3, 14), ExpiryActive},
		{"expires far out", date(2024, 9, 1), ExpiryActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyExpiry(tt.expiresAt, today, DefaultExpiryWindowDays))
		})
	}
}

func TestClassifyExpiry_IgnoresClockComponents(t *testing.T) {
	// A batch expiring today at midnight must classify the same as one
	// checked at 23:59.
	today := time.Date(2024, 3, 10, 23, 59, 0, 0, time.FixedZone("MSK", 3*3600))
	expiresAt := date(2024, 3, 10)

	assert.Equal(t, ExpiryExpiring, ClassifyExpiry(expiresAt, today, 3))
}

func TestClassifyExpiry_PartitionIsTotal(t *testing.T) {
	today := date(2024, 6, 1)

	// Every offset around the window boundary lands in exactly one class.
	for offset := -5; offset <= 10; offset++ {
		status := ClassifyExpiry(today.AddDate(0, 0, offset), today, 3)
		switch {
		case offset < 0:
			assert.Equal(t, ExpiryExpired, status, "offset %d", offset)
		case offset <= 3:
			assert.Equal(t, ExpiryExpiring, status, "offset %d", offset)
		default:
			assert.Equal(t, ExpiryActive, status, "offset %d", offset)
		}
	}
}
