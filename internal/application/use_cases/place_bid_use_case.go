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

type placeBidUseCase struct {
	ledger      portsout.OrderLedger
	configStore portsout.MarketConfigStore
	publisher   portsout.SettlementEventPublisher
	clock       Clock
}

func NewPlaceBidUseCase(
	ledger portsout.OrderLedger,
	configStore portsout.MarketConfigStore,
	publisher portsout.SettlementEventPublisher,
	clock Clock,
) portsin.PlaceBidUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &placeBidUseCase{
		ledger:      ledger,
		configStore: configStore,
		publisher:   publisher,
		clock:       clock,
	}
}

// Execute escrows a new highest bid. Every bid must clear the
// minimum-increase floor over the current highest bid, the starting price
// included; a displaced bidder gets the previous escrow back.
func (u *placeBidUseCase) Execute(ctx context.Context, command dto.PlaceBidCommand) (dto.MarketActionOutput, *apperrors.AppError) {
	if u.ledger == nil || u.configStore == nil {
		return dto.MarketActionOutput{}, apperrors.NewInternal(
			"place_bid_ports_missing",
			"order ledger and market config store are required",
			nil,
		)
	}

	bidder, appErr := valueobjects.NormalizeAddress("caller", command.Caller)
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
	if order.Auction == nil {
		return dto.MarketActionOutput{}, apperrors.NewNotAuction()
	}
	if order.Auction.Expiration.IsExpired(parseBlockInfo(command.Block)) {
		return dto.MarketActionOutput{}, apperrors.NewExpired()
	}

	bid, appErr := parseAsset(command.Bid)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	if !bid.Info.Equal(order.Auction.HighestBid.Info) {
		return dto.MarketActionOutput{}, apperrors.NewAssetInfoMismatch()
	}
	if !command.FromDeposit {
		if bid.Info.Kind == valueobjects.AssetKindToken {
			return dto.MarketActionOutput{}, apperrors.NewTokenMismatch()
		}
		funds, appErr := parseAttachedFunds(command.AttachedFunds)
		if appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
		if appErr := bid.AssertSentNativeFunds(funds); appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
	}

	config, found, appErr := u.configStore.Get(ctx)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	if !found {
		return dto.MarketActionOutput{}, apperrors.NewMarketNotInitialized()
	}

	if appErr := policies.ValidateBidAmount(order.Auction.HighestBid.Amount, config.MinIncrease, bid.Amount); appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	var instructions []entities.TransferInstruction
	if order.Auction.HasBid() {
		instructions = append(instructions, entities.NewFundTransfer(order.Auction.HighestBid, order.Auction.Bidder))
	}

	updated := entities.AuctionInfo{
		HighestBid: bid,
		Bidder:     bidder,
		Expiration: order.Auction.Expiration,
	}
	if appErr := u.ledger.UpdateAuction(ctx, order.ID, updated); appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	output := dto.MarketActionOutput{
		Action:  "bid",
		OrderID: order.ID,
		Attributes: map[string]string{
			"bidder_address": bidder,
			"bid_amount":     valueobjects.FormatAmount(bid.Amount),
		},
		Instructions: instructionResources(instructions),
	}
	publishEvent(ctx, u.publisher, u.clock, output)

	return output, nil
}
