package counter

import (
	"context"

	"github.com/securebank/securebank-api/internal/pkg/cache"
)

const (
	enrollmentsSubmittedKey = "enrollment:counters:submitted"
	storageFailoversKey     = "enrollment:counters:failovers"
)

// AddSubmission increments the accepted-enrollment counter in Redis.
func AddSubmission() error {
	ctx := context.Background()
	return cache.GetClient().Incr(ctx, enrollmentsSubmittedKey).Err()
}

// AddFailover increments the durable-storage failover counter in Redis. The
// counter is what makes the transparent fallback observable; a persistently
// climbing value means the database outage is being masked from callers.
func AddFailover() error {
	ctx := context.Background()
	return cache.GetClient().Incr(ctx, storageFailoversKey).Err()
}

// FailoverCount returns the current failover counter value.
func FailoverCount() (int64, error) {
	ctx := context.Background()
	return cache.GetClient().Get(ctx, storageFailoversKey).Int64()
}
