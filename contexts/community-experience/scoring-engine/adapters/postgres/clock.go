package postgresadapter

import "time"

// SystemClock returns wall-clock time in the process location; the engine's
// calendar-day rules depend on the location being preserved.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
