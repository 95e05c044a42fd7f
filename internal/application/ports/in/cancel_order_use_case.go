package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type CancelOrderUseCase interface {
	Execute(ctx context.Context, command dto.CancelOrderCommand) (dto.MarketActionOutput, *apperrors.AppError)
}
