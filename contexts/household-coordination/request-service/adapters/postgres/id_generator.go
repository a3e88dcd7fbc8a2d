package postgresadapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SystemClock returns wall-clock time in the process location. Streak rules
// downstream work on calendar days, so the location is not normalized here.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
