package clock

import "time"

// Clocker is the time source for code whose behavior depends on the current
// moment, such as OTP expiry and throttle checks.
type Clocker interface {
	Now() time.Time
}

// TimeClocker reads the system clock.
type TimeClocker struct{}

// New returns the production clock.
func New() *TimeClocker {
	return &TimeClocker{}
}

func (*TimeClocker) Now() time.Time {
	return time.Now()
}
