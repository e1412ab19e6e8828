package domain

import (
	"time"
)

type AdmissionResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// RetryAfterSeconds is the wait until ResetAt rounded up to whole seconds.
func (r AdmissionResult) RetryAfterSeconds(now time.Time) int64 {
	wait := r.ResetAt.Sub(now)
	if wait <= 0 {
		return 0
	}
	return int64((wait + time.Second - 1) / time.Second)
}
