package out

import (
	"context"

	"nftmarket/internal/domain/entities"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

// MarketConfigStore holds the single global config record. Initialize fails
// with a conflict when the market has already been set up; Initialize also
// seeds the order-id counter at one in the same transaction.
type MarketConfigStore interface {
	Initialize(ctx context.Context, config entities.MarketConfig) *apperrors.AppError
	Get(ctx context.Context) (entities.MarketConfig, bool, *apperrors.AppError)
	Update(ctx context.Context, config entities.MarketConfig) *apperrors.AppError
}
