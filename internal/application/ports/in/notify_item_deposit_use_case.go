package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type NotifyItemDepositUseCase interface {
	Execute(ctx context.Context, command dto.ItemDepositCommand) (dto.MarketActionOutput, *apperrors.AppError)
}
