package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type GetCollectionUseCase interface {
	Execute(ctx context.Context, query dto.GetCollectionQuery) (dto.CollectionResource, *apperrors.AppError)
}
