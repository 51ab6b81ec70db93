// Package clock abstracts time so record timestamps can be controlled in
// tests.
package clock

import "time"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by the system clock
type RealClock struct{}

// New returns a RealClock
func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
