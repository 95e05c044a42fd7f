package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type SetupMarketUseCase interface {
	Execute(ctx context.Context, command dto.SetupMarketCommand) (dto.MarketActionOutput, *apperrors.AppError)
}
