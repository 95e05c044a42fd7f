package valueobjects

import "time"

// ExpirationKind is a closed variant. An unbounded "never" deadline is
// rejected before an Expiration is ever constructed, so it has no kind here.
type ExpirationKind string

const (
	ExpirationAtHeight ExpirationKind = "at_height"
	ExpirationAtTime   ExpirationKind = "at_time"
)

// Expiration is a concrete auction deadline, either a block height or a
// wall-clock instant.
type Expiration struct {
	Kind   ExpirationKind
	Height uint64
	Time   time.Time
}

func NewHeightExpiration(height uint64) Expiration {
	return Expiration{Kind: ExpirationAtHeight, Height: height}
}

func NewTimeExpiration(at time.Time) Expiration {
	return Expiration{Kind: ExpirationAtTime, Time: at.UTC()}
}

// BlockInfo is the caller-supplied current height and time the engine
// evaluates deadlines against. The engine never schedules anything itself.
type BlockInfo struct {
	Height uint64
	Time   time.Time
}

func (e Expiration) IsExpired(block BlockInfo) bool {
	switch e.Kind {
	case ExpirationAtHeight:
		return block.Height >= e.Height
	case ExpirationAtTime:
		return !block.Time.Before(e.Time)
	default:
		return false
	}
}
