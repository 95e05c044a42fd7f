package out

import (
	"context"

	"nftmarket/internal/domain/entities"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

// OrderListFilter is the normalized listing filter: the use case has already
// clamped the page size.
type OrderListFilter struct {
	Seller     string
	StartAfter *uint64
	Limit      uint32
}

// OrderLedger is the order store. Create allocates the next order id from
// the monotonic counter and writes the order and its seller index entry in
// one transaction; Remove deletes both in one transaction. Ids are never
// reused.
type OrderLedger interface {
	Create(ctx context.Context, order entities.Order) (uint64, *apperrors.AppError)
	Get(ctx context.Context, orderID uint64) (entities.Order, bool, *apperrors.AppError)
	UpdateAuction(ctx context.Context, orderID uint64, auction entities.AuctionInfo) *apperrors.AppError
	Remove(ctx context.Context, orderID uint64) *apperrors.AppError
	List(ctx context.Context, filter OrderListFilter) ([]entities.Order, *apperrors.AppError)
}
