package clock

import "time"

// Clock abstracts time so task and update timestamps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall time in UTC, truncated to the millisecond precision
// timestamps are persisted with, so a value survives a storage round trip.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
