package use_cases

import (
	"context"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type getOrderUseCase struct {
	ledger portsout.OrderLedger
}

func NewGetOrderUseCase(ledger portsout.OrderLedger) portsin.GetOrderUseCase {
	return &getOrderUseCase{ledger: ledger}
}

func (u *getOrderUseCase) Execute(ctx context.Context, query dto.GetOrderQuery) (dto.OrderResource, *apperrors.AppError) {
	if u.ledger == nil {
		return dto.OrderResource{}, apperrors.NewInternal(
			"order_ledger_missing",
			"order ledger is required",
			nil,
		)
	}

	order, found, appErr := u.ledger.Get(ctx, query.OrderID)
	if appErr != nil {
		return dto.OrderResource{}, appErr
	}
	if !found {
		return dto.OrderResource{}, apperrors.NewOrderNotFound(query.OrderID)
	}

	return orderResource(order), nil
}
