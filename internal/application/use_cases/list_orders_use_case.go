package use_cases

import (
	"context"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 30
)

func clampPageLimit(limit *uint32) uint32 {
	if limit == nil || *limit == 0 {
		return defaultPageLimit
	}
	if *limit > maxPageLimit {
		return maxPageLimit
	}

	return *limit
}

type listOrdersUseCase struct {
	ledger portsout.OrderLedger
}

func NewListOrdersUseCase(ledger portsout.OrderLedger) portsin.ListOrdersUseCase {
	return &listOrdersUseCase{ledger: ledger}
}

// Execute lists orders in ascending id order, optionally restricted to one
// seller, resuming after start_after.
func (u *listOrdersUseCase) Execute(ctx context.Context, query dto.ListOrdersQuery) (dto.OrderListResource, *apperrors.AppError) {
	if u.ledger == nil {
		return dto.OrderListResource{}, apperrors.NewInternal(
			"order_ledger_missing",
			"order ledger is required",
			nil,
		)
	}

	filter := portsout.OrderListFilter{
		StartAfter: query.StartAfter,
		Limit:      clampPageLimit(query.Limit),
	}
	if query.Seller != "" {
		seller, appErr := valueobjects.NormalizeAddress("seller_address", query.Seller)
		if appErr != nil {
			return dto.OrderListResource{}, appErr
		}
		filter.Seller = seller
	}

	orders, appErr := u.ledger.List(ctx, filter)
	if appErr != nil {
		return dto.OrderListResource{}, appErr
	}

	resources := make([]dto.OrderResource, 0, len(orders))
	for _, order := range orders {
		resources = append(resources, orderResource(order))
	}

	return dto.OrderListResource{Orders: resources}, nil
}
