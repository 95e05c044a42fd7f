package dto

type SetupMarketCommand struct {
	Owner                     string
	MinIncrease               string
	MaxAuctionDurationBlocks  uint64
	MaxAuctionDurationSeconds uint64
	CancelFeeRate             string
}

// UpdateMarketConfigCommand is a partial update. Nil fields keep their
// current value. Caller must be the configured owner.
type UpdateMarketConfigCommand struct {
	Caller                    string
	Owner                     *string
	MinIncrease               *string
	MaxAuctionDurationBlocks  *uint64
	MaxAuctionDurationSeconds *uint64
	CancelFeeRate             *string
}

type GetMarketConfigQuery struct{}

type MarketConfigResource struct {
	Owner                     string `json:"owner"`
	MinIncrease               string `json:"min_increase"`
	MaxAuctionDurationBlocks  uint64 `json:"max_auction_duration_blocks"`
	MaxAuctionDurationSeconds uint64 `json:"max_auction_duration_seconds"`
	CancelFeeRate             string `json:"cancel_fee_rate"`
}
