package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type ListOrdersUseCase interface {
	Execute(ctx context.Context, query dto.ListOrdersQuery) (dto.OrderListResource, *apperrors.AppError)
}
