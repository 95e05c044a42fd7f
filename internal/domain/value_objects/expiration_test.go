//go:build !integration

package valueobjects

import (
	"testing"
	"time"
)

func TestHeightExpirationIsInclusive(t *testing.T) {
	expiration := NewHeightExpiration(100)

	if expiration.IsExpired(BlockInfo{Height: 99}) {
		t.Fatal("height below the deadline must not be expired")
	}
	if !expiration.IsExpired(BlockInfo{Height: 100}) {
		t.Fatal("height at the deadline must be expired")
	}
	if !expiration.IsExpired(BlockInfo{Height: 101}) {
		t.Fatal("height past the deadline must be expired")
	}
}

func TestTimeExpirationIsInclusive(t *testing.T) {
	deadline := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	expiration := NewTimeExpiration(deadline)

	if expiration.IsExpired(BlockInfo{Time: deadline.Add(-time.Second)}) {
		t.Fatal("time before the deadline must not be expired")
	}
	if !expiration.IsExpired(BlockInfo{Time: deadline}) {
		t.Fatal("time at the deadline must be expired")
	}
	if !expiration.IsExpired(BlockInfo{Time: deadline.Add(time.Second)}) {
		t.Fatal("time past the deadline must be expired")
	}
}
