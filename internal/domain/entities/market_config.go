package entities

import (
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

// MarketConfig is the single global market policy record. Owner gates every
// administrative operation; the remaining fields parameterize bidding,
// auction duration, and cancellation.
type MarketConfig struct {
	Owner                     string
	MinIncrease               valueobjects.Rate
	MaxAuctionDurationBlocks  uint64
	MaxAuctionDurationSeconds uint64
	CancelFeeRate             valueobjects.Rate
}

// NewMarketConfig validates a full config. The cancel fee rate is capped at
// one so a cancellation can never charge more than the escrowed bid.
func NewMarketConfig(owner string, minIncrease valueobjects.Rate, maxBlocks, maxSeconds uint64, cancelFeeRate valueobjects.Rate) (MarketConfig, *apperrors.AppError) {
	if cancelFeeRate.GreaterThanOne() {
		return MarketConfig{}, apperrors.NewInvalidFeeRate()
	}

	return MarketConfig{
		Owner:                     owner,
		MinIncrease:               minIncrease,
		MaxAuctionDurationBlocks:  maxBlocks,
		MaxAuctionDurationSeconds: maxSeconds,
		CancelFeeRate:             cancelFeeRate,
	}, nil
}
