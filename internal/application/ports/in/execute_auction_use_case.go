package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type ExecuteAuctionUseCase interface {
	Execute(ctx context.Context, command dto.ExecuteAuctionCommand) (dto.MarketActionOutput, *apperrors.AppError)
}
