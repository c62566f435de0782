package org

import "time"

// Clock provides the current time for grant records and events.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
