package policies

import (
	"math/big"

	"nftmarket/internal/domain/entities"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

// DistributeProceeds produces the full, ordered instruction list for a
// settlement at the given price. The order is fixed: an optional refund of
// the displaced bid, then the item release to the buyer, then one royalty
// payout per entry in the collection's royalty list, then the remainder to
// the seller. Royalty payouts round down, so the seller absorbs every
// rounding remainder and the payouts plus the remainder always sum to the
// price exactly.
func DistributeProceeds(
	order entities.Order,
	buyer string,
	price valueobjects.Asset,
	royalties []entities.Royalty,
	refundPriorBid bool,
) ([]entities.TransferInstruction, *apperrors.AppError) {
	instructions := make([]entities.TransferInstruction, 0, len(royalties)+3)

	if refundPriorBid && order.Auction != nil && order.Auction.HasBid() {
		instructions = append(instructions, entities.NewFundTransfer(order.Auction.HighestBid, order.Auction.Bidder))
	}

	instructions = append(instructions, order.ItemTransferTo(buyer))

	remainder := new(big.Int).Set(price.Amount)
	for _, royalty := range royalties {
		payout := royalty.Rate.MulFloor(price.Amount)
		remainder.Sub(remainder, payout)
		if remainder.Sign() < 0 {
			return nil, apperrors.NewOverflow("royalty_payout")
		}

		instructions = append(instructions, entities.NewFundTransfer(price.WithAmount(payout), royalty.Address))
	}

	instructions = append(instructions, entities.NewFundTransfer(price.WithAmount(remainder), order.Seller))

	return instructions, nil
}
