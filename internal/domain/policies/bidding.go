package policies

import (
	"math/big"

	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

// MinBidAmount returns the lowest bid that beats the current highest bid:
// floor(highest * (1 + minIncrease)).
func MinBidAmount(highest *big.Int, minIncrease valueobjects.Rate) *big.Int {
	return minIncrease.AddOne().MulFloor(highest)
}

// ValidateBidAmount rejects a bid below the minimum-increase floor over the
// current highest bid. For an unbid auction the highest bid is the seller's
// starting price and a bid matching it exactly is acceptable when the
// minimum increase is zero.
func ValidateBidAmount(highest *big.Int, minIncrease valueobjects.Rate, bid *big.Int) *apperrors.AppError {
	min := MinBidAmount(highest, minIncrease)
	if min.Cmp(bid) > 0 {
		return apperrors.NewMinPrice(valueobjects.FormatAmount(min))
	}

	return nil
}
