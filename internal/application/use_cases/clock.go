package use_cases

import "time"

// Clock stamps settlement events with wall-clock time. Expiration checks
// never consult it; they use the block info carried by each command.
type Clock interface {
	NowUTC() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) NowUTC() time.Time {
	return time.Now().UTC()
}
