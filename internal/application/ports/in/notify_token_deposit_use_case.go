package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type NotifyTokenDepositUseCase interface {
	Execute(ctx context.Context, command dto.TokenDepositCommand) (dto.MarketActionOutput, *apperrors.AppError)
}
