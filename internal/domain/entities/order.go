package entities

import (
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

// OrderKind is derived from which listing components an order carries. It is
// never stored; Kind recomputes it from the fixed-price and auction parts.
type OrderKind string

const (
	OrderKindFixedPrice        OrderKind = "fixed_price"
	OrderKindAuction           OrderKind = "auction"
	OrderKindAuctionWithBuyout OrderKind = "auction_with_buyout"
)

// AuctionInfo is the auction component of an order. Bidder is the empty
// string until the first bid arrives; HighestBid then still holds the
// starting price the seller asked for.
type AuctionInfo struct {
	HighestBid valueobjects.Asset
	Bidder     string
	Expiration valueobjects.Expiration
}

// HasBid reports whether any bid has been escrowed for the auction.
func (a AuctionInfo) HasBid() bool {
	return a.Bidder != ""
}

// Order is one live listing holding an escrowed item. At least one of
// FixedPrice and Auction is always present.
type Order struct {
	ID         uint64
	Seller     string
	Collection string
	ItemID     string
	FixedPrice *valueobjects.Asset
	Auction    *AuctionInfo
}

// NewOrder assembles a listing from its components. The ID is zero until the
// ledger allocates one.
func NewOrder(seller, collection, itemID string, fixedPrice *valueobjects.Asset, auction *AuctionInfo) (Order, *apperrors.AppError) {
	if fixedPrice == nil && auction == nil {
		return Order{}, apperrors.NewValidation(
			"invalid_request",
			"order requires a fixed price, an auction, or both",
			map[string]any{"collection": collection, "item_id": itemID},
		)
	}

	return Order{
		Seller:     seller,
		Collection: collection,
		ItemID:     itemID,
		FixedPrice: fixedPrice,
		Auction:    auction,
	}, nil
}

func (o Order) Kind() OrderKind {
	switch {
	case o.FixedPrice != nil && o.Auction != nil:
		return OrderKindAuctionWithBuyout
	case o.Auction != nil:
		return OrderKindAuction
	default:
		return OrderKindFixedPrice
	}
}

// ItemTransferTo builds the custody instruction releasing this order's item
// to the recipient.
func (o Order) ItemTransferTo(recipient string) TransferInstruction {
	return NewItemTransfer(o.Collection, o.ItemID, recipient)
}
