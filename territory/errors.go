package territory

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrLocationNotFound is returned when the requested location id does
	// not exist in the catalog.
	ErrLocationNotFound = errors.New("location not found")

	// ErrAlreadyOwned is returned by direct capture when the actor's team
	// already controls the location.
	ErrAlreadyOwned = errors.New("location already controlled by your team")
)

// TooFarError is the geofence failure. It carries the measured distance so
// the client can tell the user how much closer they need to get.
type TooFarError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *TooFarError) Error() string {
	return fmt.Sprintf("too far from location: %.0fm away, must be within %.0fm", e.DistanceMeters, e.RadiusMeters)
}

// RateLimitedError is the cooldown rejection. RetryAfter is the remaining
// wait before the actor may check in at the same location again.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("check-in rate limited, retry in %s", e.RetryAfter.Round(time.Second))
}
