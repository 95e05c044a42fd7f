package use_cases

import (
	"context"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/domain/policies"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type executeOrderUseCase struct {
	ledger    portsout.OrderLedger
	catalog   portsout.CollectionCatalog
	publisher portsout.SettlementEventPublisher
	clock     Clock
}

func NewExecuteOrderUseCase(
	ledger portsout.OrderLedger,
	catalog portsout.CollectionCatalog,
	publisher portsout.SettlementEventPublisher,
	clock Clock,
) portsin.ExecuteOrderUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &executeOrderUseCase{
		ledger:    ledger,
		catalog:   catalog,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute settles an order at its fixed price. On an auction-with-buyout the
// displaced bid is refunded inside the same instruction list, before the
// item transfer. The auction deadline does not matter here: the buyout stays
// purchasable until the order is settled or cancelled.
func (u *executeOrderUseCase) Execute(ctx context.Context, command dto.ExecuteOrderCommand) (dto.MarketActionOutput, *apperrors.AppError) {
	if u.ledger == nil || u.catalog == nil {
		return dto.MarketActionOutput{}, apperrors.NewInternal(
			"execute_order_ports_missing",
			"order ledger and collection catalog are required",
			nil,
		)
	}

	buyer, appErr := valueobjects.NormalizeAddress("caller", command.Caller)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	order, found, appErr := u.ledger.Get(ctx, command.OrderID)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	if !found {
		return dto.MarketActionOutput{}, apperrors.NewOrderNotFound(command.OrderID)
	}
	if order.FixedPrice == nil {
		return dto.MarketActionOutput{}, apperrors.NewNoFixedPrice()
	}

	price := *order.FixedPrice
	if command.Payment != nil {
		payment, appErr := parseAsset(*command.Payment)
		if appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
		if !payment.Equal(price) {
			return dto.MarketActionOutput{}, apperrors.NewTokenMismatch()
		}
	} else {
		if price.Info.Kind == valueobjects.AssetKindToken {
			return dto.MarketActionOutput{}, apperrors.NewTokenMismatch()
		}
		funds, appErr := parseAttachedFunds(command.AttachedFunds)
		if appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
		if appErr := price.AssertSentNativeFunds(funds); appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
	}

	info, found, appErr := u.catalog.Get(ctx, order.Collection)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	if !found {
		return dto.MarketActionOutput{}, apperrors.NewCollectionNotFound(order.Collection)
	}

	instructions, appErr := policies.DistributeProceeds(order, buyer, price, info.Royalties, true)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	if appErr := u.ledger.Remove(ctx, order.ID); appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	output := dto.MarketActionOutput{
		Action:  "execute_order",
		OrderID: order.ID,
		Attributes: map[string]string{
			"buyer_address":  buyer,
			"seller_address": order.Seller,
			"price":          valueobjects.FormatAmount(price.Amount),
		},
		Instructions: instructionResources(instructions),
	}
	publishEvent(ctx, u.publisher, u.clock, output)

	return output, nil
}
