package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type UpdateCollectionUseCase interface {
	Execute(ctx context.Context, command dto.UpdateCollectionCommand) (dto.MarketActionOutput, *apperrors.AppError)
}
