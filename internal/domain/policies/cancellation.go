package policies

import (
	"math/big"

	valueobjects "nftmarket/internal/domain/value_objects"
)

// CancelFee is the fee a seller owes to cancel an auction that already holds
// a bid: floor(highest bid * cancelFeeRate), denominated in the bid asset.
func CancelFee(highestBid valueobjects.Asset, cancelFeeRate valueobjects.Rate) valueobjects.Asset {
	return highestBid.WithAmount(cancelFeeRate.MulFloor(highestBid.Amount))
}

// CancelRefund is what the displaced bidder receives when the seller cancels:
// the escrowed bid plus the seller's fee.
func CancelRefund(highestBid, fee valueobjects.Asset) valueobjects.Asset {
	return highestBid.WithAmount(new(big.Int).Add(highestBid.Amount, fee.Amount))
}
