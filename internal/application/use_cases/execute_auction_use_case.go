package use_cases

import (
	"context"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/domain/entities"
	"nftmarket/internal/domain/policies"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type executeAuctionUseCase struct {
	ledger    portsout.OrderLedger
	catalog   portsout.CollectionCatalog
	publisher portsout.SettlementEventPublisher
	clock     Clock
}

func NewExecuteAuctionUseCase(
	ledger portsout.OrderLedger,
	catalog portsout.CollectionCatalog,
	publisher portsout.SettlementEventPublisher,
	clock Clock,
) portsin.ExecuteAuctionUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &executeAuctionUseCase{
		ledger:    ledger,
		catalog:   catalog,
		publisher: publisher,
		clock:     clock,
	}
}

// Execute settles an expired auction. With a bid the item goes to the bidder
// and the bid is distributed; without one the item simply returns to the
// seller. Anyone may trigger settlement once the deadline has passed.
func (u *executeAuctionUseCase) Execute(ctx context.Context, command dto.ExecuteAuctionCommand) (dto.MarketActionOutput, *apperrors.AppError) {
	if u.ledger == nil || u.catalog == nil {
		return dto.MarketActionOutput{}, apperrors.NewInternal(
			"execute_auction_ports_missing",
			"order ledger and collection catalog are required",
			nil,
		)
	}

	order, found, appErr := u.ledger.Get(ctx, command.OrderID)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	if !found {
		return dto.MarketActionOutput{}, apperrors.NewOrderNotFound(command.OrderID)
	}
	if order.Auction == nil {
		return dto.MarketActionOutput{}, apperrors.NewNotAuction()
	}
	if !order.Auction.Expiration.IsExpired(parseBlockInfo(command.Block)) {
		return dto.MarketActionOutput{}, apperrors.NewNotExpired()
	}

	var instructions []entities.TransferInstruction
	attributes := map[string]string{"seller_address": order.Seller}

	if order.Auction.HasBid() {
		info, found, appErr := u.catalog.Get(ctx, order.Collection)
		if appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
		if !found {
			return dto.MarketActionOutput{}, apperrors.NewCollectionNotFound(order.Collection)
		}

		instructions, appErr = policies.DistributeProceeds(order, order.Auction.Bidder, order.Auction.HighestBid, info.Royalties, false)
		if appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
		attributes["buyer_address"] = order.Auction.Bidder
		attributes["price"] = valueobjects.FormatAmount(order.Auction.HighestBid.Amount)
	} else {
		instructions = []entities.TransferInstruction{order.ItemTransferTo(order.Seller)}
	}

	if appErr := u.ledger.Remove(ctx, order.ID); appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	output := dto.MarketActionOutput{
		Action:       "execute_auction",
		OrderID:      order.ID,
		Attributes:   attributes,
		Instructions: instructionResources(instructions),
	}
	publishEvent(ctx, u.publisher, u.clock, output)

	return output, nil
}
