package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type ListCollectionsUseCase interface {
	Execute(ctx context.Context, query dto.ListCollectionsQuery) (dto.CollectionListResource, *apperrors.AppError)
}
