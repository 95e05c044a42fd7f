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

type cancelOrderUseCase struct {
	ledger      portsout.OrderLedger
	configStore portsout.MarketConfigStore
	publisher   portsout.SettlementEventPublisher
	clock       Clock
}

func NewCancelOrderUseCase(
	ledger portsout.OrderLedger,
	configStore portsout.MarketConfigStore,
	publisher portsout.SettlementEventPublisher,
	clock Clock,
) portsin.CancelOrderUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &cancelOrderUseCase{
		ledger:      ledger,
		configStore: configStore,
		publisher:   publisher,
		clock:       clock,
	}
}

// Execute cancels a listing. An auction past its deadline can no longer be
// cancelled and has to be settled instead. Cancelling an auction that holds a
// bid costs the seller a fee at the currently configured rate; the displaced
// bidder receives the escrowed bid plus that fee. The fee must be supplied
// exactly.
func (u *cancelOrderUseCase) Execute(ctx context.Context, command dto.CancelOrderCommand) (dto.MarketActionOutput, *apperrors.AppError) {
	if u.ledger == nil || u.configStore == nil {
		return dto.MarketActionOutput{}, apperrors.NewInternal(
			"cancel_order_ports_missing",
			"order ledger and market config store are required",
			nil,
		)
	}

	caller, appErr := valueobjects.NormalizeAddress("caller", command.Caller)
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
	if caller != order.Seller {
		return dto.MarketActionOutput{}, apperrors.NewUnauthorized()
	}
	if order.Auction != nil && order.Auction.Expiration.IsExpired(parseBlockInfo(command.Block)) {
		return dto.MarketActionOutput{}, apperrors.NewExpired()
	}

	var instructions []entities.TransferInstruction
	attributes := map[string]string{"seller_address": order.Seller}

	if order.Auction != nil && order.Auction.HasBid() {
		config, found, appErr := u.configStore.Get(ctx)
		if appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
		if !found {
			return dto.MarketActionOutput{}, apperrors.NewMarketNotInitialized()
		}

		fee := policies.CancelFee(order.Auction.HighestBid, config.CancelFeeRate)
		if appErr := u.assertFeeSupplied(fee, command); appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}

		refund := policies.CancelRefund(order.Auction.HighestBid, fee)
		instructions = append(instructions, entities.NewFundTransfer(refund, order.Auction.Bidder))
		attributes["cancel_fee"] = valueobjects.FormatAmount(fee.Amount)
	} else {
		if appErr := u.assertNoFeeSupplied(command); appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
	}

	instructions = append(instructions, order.ItemTransferTo(order.Seller))

	if appErr := u.ledger.Remove(ctx, order.ID); appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	output := dto.MarketActionOutput{
		Action:       "cancel_order",
		OrderID:      order.ID,
		Attributes:   attributes,
		Instructions: instructionResources(instructions),
	}
	publishEvent(ctx, u.publisher, u.clock, output)

	return output, nil
}

// assertFeeSupplied checks the exact fee payment: attached native funds for a
// native fee asset, a matching token deposit for a token fee asset. A fee
// that floors to zero forbids supplying anything.
func (u *cancelOrderUseCase) assertFeeSupplied(fee valueobjects.Asset, command dto.CancelOrderCommand) *apperrors.AppError {
	if fee.Info.Kind == valueobjects.AssetKindToken {
		if len(command.AttachedFunds) != 0 {
			return apperrors.NewCancelFeeMismatch(feeAssetDetails(fee))
		}
		if fee.IsZero() {
			if command.SuppliedFee != nil {
				return apperrors.NewCancelFeeMismatch(feeAssetDetails(fee))
			}
			return nil
		}
		if command.SuppliedFee == nil {
			return apperrors.NewCancelFeeMismatch(feeAssetDetails(fee))
		}
		supplied, appErr := parseAsset(*command.SuppliedFee)
		if appErr != nil {
			return appErr
		}
		if !supplied.Equal(fee) {
			return apperrors.NewCancelFeeMismatch(feeAssetDetails(fee))
		}
		return nil
	}

	if command.SuppliedFee != nil {
		return apperrors.NewCancelFeeMismatch(feeAssetDetails(fee))
	}
	funds, appErr := parseAttachedFunds(command.AttachedFunds)
	if appErr != nil {
		return appErr
	}
	if appErr := fee.AssertSentNativeFunds(funds); appErr != nil {
		return apperrors.NewCancelFeeMismatch(feeAssetDetails(fee))
	}

	return nil
}

func (u *cancelOrderUseCase) assertNoFeeSupplied(command dto.CancelOrderCommand) *apperrors.AppError {
	if command.SuppliedFee != nil || len(command.AttachedFunds) != 0 {
		return apperrors.NewValidation(
			"invalid_request",
			"cancelling this order requires no fee",
			nil,
		)
	}

	return nil
}
