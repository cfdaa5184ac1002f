package inventory

import "time"

// ExpiryStatus classifies a batch relative to today and a lookahead window.
type ExpiryStatus string

const (
	// ExpiryExpired means the batch expired before today and must not be sold.
	ExpiryExpired ExpiryStatus = "expired"
	// ExpiryExpiring means the batch expires within the lookahead window,
	// today inclusive. Still sellable.
	ExpiryExpiring ExpiryStatus = "expiring"
	// ExpiryActive means the batch expires after the lookahead window.
	ExpiryActive ExpiryStatus = "active"
)

// DefaultExpiryWindowDays is the lookahead used when none is configured.
const DefaultExpiryWindowDays = 3

// ClassifyExpiry partitions (expiresAt, today, windowDays) into exactly one
// of expired, expiring or active. It is used for filtering and reporting;
// sale eligibility only excludes the strictly expired.
func ClassifyExpiry(expiresAt, today time.Time, windowDays int) ExpiryStatus {
	expiry := DateOf(expiresAt)
	day := DateOf(today)
	switch {
	case expiry.Before(day):
		return ExpiryExpired
	case !expiry.After(day.AddDate(0, 0, windowDays)):
		return ExpiryExpiring
	default:
		return ExpiryActive
	}
}
