package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type ExecuteOrderUseCase interface {
	Execute(ctx context.Context, command dto.ExecuteOrderCommand) (dto.MarketActionOutput, *apperrors.AppError)
}
