package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/crewcord/crewcord/internal/common/clock Clock

// Clock abstracts time so services can be tested deterministically
type Clock interface {
	Now() time.Time
}

// System implements Clock using the system clock
type System struct{}

// NewSystem returns a Clock backed by the real time
func NewSystem() *System {
	return &System{}
}

// Now returns the current time
func (c *System) Now() time.Time {
	return time.Now()
}
