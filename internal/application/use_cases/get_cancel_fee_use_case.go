package use_cases

import (
	"context"
	"math/big"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/domain/policies"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type getCancelFeeUseCase struct {
	ledger      portsout.OrderLedger
	configStore portsout.MarketConfigStore
}

func NewGetCancelFeeUseCase(
	ledger portsout.OrderLedger,
	configStore portsout.MarketConfigStore,
) portsin.GetCancelFeeUseCase {
	return &getCancelFeeUseCase{ledger: ledger, configStore: configStore}
}

// Execute quotes the fee cancelling the order would cost right now. Orders
// without an active bid quote a zero fee in the listing's asset kind.
func (u *getCancelFeeUseCase) Execute(ctx context.Context, query dto.GetCancelFeeQuery) (dto.CancelFeeResource, *apperrors.AppError) {
	if u.ledger == nil || u.configStore == nil {
		return dto.CancelFeeResource{}, apperrors.NewInternal(
			"get_cancel_fee_ports_missing",
			"order ledger and market config store are required",
			nil,
		)
	}

	order, found, appErr := u.ledger.Get(ctx, query.OrderID)
	if appErr != nil {
		return dto.CancelFeeResource{}, appErr
	}
	if !found {
		return dto.CancelFeeResource{}, apperrors.NewOrderNotFound(query.OrderID)
	}

	if order.Auction != nil && order.Auction.HasBid() {
		config, found, appErr := u.configStore.Get(ctx)
		if appErr != nil {
			return dto.CancelFeeResource{}, appErr
		}
		if !found {
			return dto.CancelFeeResource{}, apperrors.NewMarketNotInitialized()
		}

		fee := policies.CancelFee(order.Auction.HighestBid, config.CancelFeeRate)
		return dto.CancelFeeResource{FeeAsset: assetResource(fee)}, nil
	}

	if order.Auction != nil {
		zero := order.Auction.HighestBid.WithAmount(big.NewInt(0))
		return dto.CancelFeeResource{FeeAsset: assetResource(zero)}, nil
	}

	zero := order.FixedPrice.WithAmount(big.NewInt(0))
	return dto.CancelFeeResource{FeeAsset: assetResource(zero)}, nil
}
