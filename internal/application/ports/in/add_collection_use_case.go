package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type AddCollectionUseCase interface {
	Execute(ctx context.Context, command dto.AddCollectionCommand) (dto.MarketActionOutput, *apperrors.AppError)
}
