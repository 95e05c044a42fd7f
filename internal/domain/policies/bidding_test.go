//go:build !integration

package policies

import (
	"math/big"
	"testing"

	valueobjects "nftmarket/internal/domain/value_objects"
)

func TestMinBidAmountFloorsIncrease(t *testing.T) {
	testCases := []struct {
		highest     int64
		minIncrease string
		expected    int64
	}{
		{highest: 1000, minIncrease: "0.1", expected: 1100},
		{highest: 999, minIncrease: "0.1", expected: 1098},
		{highest: 1000, minIncrease: "0", expected: 1000},
		{highest: 1, minIncrease: "0.5", expected: 1},
	}

	for _, testCase := range testCases {
		actual := MinBidAmount(big.NewInt(testCase.highest), valueobjects.MustRate(testCase.minIncrease))
		if actual.Cmp(big.NewInt(testCase.expected)) != 0 {
			t.Fatalf("highest %d increase %s: expected %d, got %s", testCase.highest, testCase.minIncrease, testCase.expected, actual)
		}
	}
}

func TestValidateBidAmountRejectsBelowFloor(t *testing.T) {
	appErr := ValidateBidAmount(big.NewInt(1000), valueobjects.MustRate("0.1"), big.NewInt(1099))
	if appErr == nil {
		t.Fatal("expected min_price error, got nil")
	}
	if appErr.Code != "min_price" {
		t.Fatalf("expected min_price, got %s", appErr.Code)
	}
	if appErr.Details["min_bid_amount"] != "1100" {
		t.Fatalf("expected floor 1100 in details, got %v", appErr.Details["min_bid_amount"])
	}
}

func TestValidateBidAmountAcceptsFloorExactly(t *testing.T) {
	if appErr := ValidateBidAmount(big.NewInt(1000), valueobjects.MustRate("0.1"), big.NewInt(1100)); appErr != nil {
		t.Fatalf("expected bid at the floor to pass, got %+v", appErr)
	}
}

func TestValidateBidAmountZeroIncreaseAcceptsMatchingStartingPrice(t *testing.T) {
	if appErr := ValidateBidAmount(big.NewInt(500), valueobjects.ZeroRate(), big.NewInt(500)); appErr != nil {
		t.Fatalf("expected matching starting price to pass, got %+v", appErr)
	}
}
