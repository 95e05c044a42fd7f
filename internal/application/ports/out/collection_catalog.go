package out

import (
	"context"

	"nftmarket/internal/domain/entities"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type CollectionListFilter struct {
	StartAfter string
	Limit      uint32
}

// CollectionCatalog stores per-collection market policy. Create fails with a
// conflict when the collection address is already registered.
type CollectionCatalog interface {
	Create(ctx context.Context, info entities.CollectionInfo) *apperrors.AppError
	Get(ctx context.Context, collection string) (entities.CollectionInfo, bool, *apperrors.AppError)
	Update(ctx context.Context, info entities.CollectionInfo) *apperrors.AppError
	List(ctx context.Context, filter CollectionListFilter) ([]entities.CollectionInfo, *apperrors.AppError)
}
