package in

import (
	"context"

	"nftmarket/internal/application/dto"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type GetCancelFeeUseCase interface {
	Execute(ctx context.Context, query dto.GetCancelFeeQuery) (dto.CancelFeeResource, *apperrors.AppError)
}
