package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type UpdateMarketConfigUseCase interface {
	Execute(ctx context.Context, command dto.UpdateMarketConfigCommand) (dto.MarketActionOutput, *apperrors.AppError)
}
