package policies

import (
	"time"

	"nftmarket/internal/domain/entities"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

// ValidateAuctionWindow checks a new auction deadline against the current
// block: it must lie in the future and within the configured maximum
// duration for its kind.
func ValidateAuctionWindow(expiration valueobjects.Expiration, block valueobjects.BlockInfo, config entities.MarketConfig) *apperrors.AppError {
	if expiration.IsExpired(block) {
		return apperrors.NewExpired()
	}

	switch expiration.Kind {
	case valueobjects.ExpirationAtHeight:
		if expiration.Height-block.Height > config.MaxAuctionDurationBlocks {
			return apperrors.NewMaxDuration()
		}
	case valueobjects.ExpirationAtTime:
		if uint64(expiration.Time.Sub(block.Time)/time.Second) > config.MaxAuctionDurationSeconds {
			return apperrors.NewMaxDuration()
		}
	}

	return nil
}
