// Package clock abstracts the wall-clock time source so that cooldown and
// status-duration logic can be tested with a fixed time.
package clock

import "time"

//go:generate mockgen -destination=mocks/mock_clock.go -package=mocks github.com/fableforge/gamemaster/internal/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// New returns a Clock backed by time.Now
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}
