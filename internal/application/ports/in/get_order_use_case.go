package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type GetOrderUseCase interface {
	Execute(ctx context.Context, query dto.GetOrderQuery) (dto.OrderResource, *apperrors.AppError)
}
