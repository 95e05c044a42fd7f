package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type PlaceBidUseCase interface {
	Execute(ctx context.Context, command dto.PlaceBidCommand) (dto.MarketActionOutput, *apperrors.AppError)
}
