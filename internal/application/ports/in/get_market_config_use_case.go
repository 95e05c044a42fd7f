package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type GetMarketConfigUseCase interface {
	Execute(ctx context.Context, query dto.GetMarketConfigQuery) (dto.MarketConfigResource, *apperrors.AppError)
}
