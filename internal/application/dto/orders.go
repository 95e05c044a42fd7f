package dto

type AuctionInfoResource struct {
	HighestBid AssetPayload      `json:"highest_bid"`
	Bidder     string            `json:"bidder,omitempty"`
	Expiration ExpirationPayload `json:"expiration"`
}

type OrderResource struct {
	ID         uint64               `json:"id"`
	Kind       string               `json:"kind"`
	Seller     string               `json:"seller_address"`
	Collection string               `json:"collection_address"`
	ItemID     string               `json:"item_id"`
	FixedPrice *AssetPayload        `json:"fixed_price,omitempty"`
	Auction    *AuctionInfoResource `json:"auction,omitempty"`
}

type OrderListResource struct {
	Orders []OrderResource `json:"orders"`
}

type GetOrderQuery struct {
	OrderID uint64
}

type ListOrdersQuery struct {
	Seller     string
	StartAfter *uint64
	Limit      *uint32
}

type GetCancelFeeQuery struct {
	OrderID uint64
}

type CancelFeeResource struct {
	FeeAsset AssetPayload `json:"fee_asset"`
}

// MakeFixedPriceListingPayload and MakeAuctionListingPayload are the two
// listing intents an item deposit can carry. Exactly one must be present.
type MakeFixedPriceListingPayload struct {
	Price AssetPayload `json:"price"`
}

type MakeAuctionListingPayload struct {
	StartPrice  AssetPayload      `json:"start_price"`
	Expiration  ExpirationPayload `json:"expiration"`
	BuyoutPrice *AssetPayload     `json:"buyout_price,omitempty"`
}

type ItemDepositPayload struct {
	MakeFixedPriceListing *MakeFixedPriceListingPayload `json:"make_fixed_price_listing,omitempty"`
	MakeAuctionListing    *MakeAuctionListingPayload    `json:"make_auction_listing,omitempty"`
}

// ItemDepositCommand is the custody contract's notification that it now
// escrows the sender's item. Collection is the notifying contract's address.
type ItemDepositCommand struct {
	Collection string
	Sender     string
	ItemID     string
	Payload    ItemDepositPayload
	Block      BlockInfoPayload
}

type OrderRefPayload struct {
	OrderID uint64 `json:"order_id"`
}

type TokenDepositPayload struct {
	ExecuteOrder *OrderRefPayload `json:"execute_order,omitempty"`
	Bid          *OrderRefPayload `json:"bid,omitempty"`
	CancelOrder  *OrderRefPayload `json:"cancel_order,omitempty"`
}

// TokenDepositCommand is the token contract's notification that the sender
// deposited Amount of it for the operation named in the payload.
type TokenDepositCommand struct {
	ContractAddress string
	Sender          string
	Amount          string
	Payload         TokenDepositPayload
	Block           BlockInfoPayload
}

// ExecuteOrderCommand buys at the fixed price. The native path carries
// attached funds; the token-deposit path carries the reconstructed payment.
type ExecuteOrderCommand struct {
	Caller        string
	OrderID       uint64
	Payment       *AssetPayload
	AttachedFunds []CoinPayload
	Block         BlockInfoPayload
}

type ExecuteAuctionCommand struct {
	Caller  string
	OrderID uint64
	Block   BlockInfoPayload
}

// PlaceBidCommand carries the full bid asset. The native path additionally
// carries the attached funds that must match it exactly.
type PlaceBidCommand struct {
	Caller        string
	OrderID       uint64
	Bid           AssetPayload
	AttachedFunds []CoinPayload
	FromDeposit   bool
	Block         BlockInfoPayload
}

// CancelOrderCommand cancels a listing. When the auction holds a bid the
// seller owes the cancel fee: supplied as attached funds on the native path
// or as the reconstructed deposit on the token path.
type CancelOrderCommand struct {
	Caller        string
	OrderID       uint64
	SuppliedFee   *AssetPayload
	AttachedFunds []CoinPayload
	Block         BlockInfoPayload
}

type TransferInstructionResource struct {
	Type            string `json:"type"`
	Recipient       string `json:"recipient"`
	Denom           string `json:"denom,omitempty"`
	ContractAddress string `json:"contract_address,omitempty"`
	Amount          string `json:"amount,omitempty"`
	Collection      string `json:"collection_address,omitempty"`
	ItemID          string `json:"item_id,omitempty"`
}

// MarketActionOutput is the envelope every mutating operation returns: the
// ordered transfer instructions the host ledger must apply, plus the
// operation's attributes.
type MarketActionOutput struct {
	Action       string                        `json:"action"`
	OrderID      uint64                        `json:"order_id,omitempty"`
	Attributes   map[string]string             `json:"attributes,omitempty"`
	Instructions []TransferInstructionResource `json:"instructions"`
}
