package use_cases

import (
	"context"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type notifyTokenDepositUseCase struct {
	executeOrder portsin.ExecuteOrderUseCase
	placeBid     portsin.PlaceBidUseCase
	cancelOrder  portsin.CancelOrderUseCase
}

func NewNotifyTokenDepositUseCase(
	executeOrder portsin.ExecuteOrderUseCase,
	placeBid portsin.PlaceBidUseCase,
	cancelOrder portsin.CancelOrderUseCase,
) portsin.NotifyTokenDepositUseCase {
	return &notifyTokenDepositUseCase{
		executeOrder: executeOrder,
		placeBid:     placeBid,
		cancelOrder:  cancelOrder,
	}
}

// Execute dispatches a fungible-token deposit to the operation named in its
// payload, reconstructing the deposited amount as the payment, bid, or
// cancel fee.
func (u *notifyTokenDepositUseCase) Execute(ctx context.Context, command dto.TokenDepositCommand) (dto.MarketActionOutput, *apperrors.AppError) {
	if u.executeOrder == nil || u.placeBid == nil || u.cancelOrder == nil {
		return dto.MarketActionOutput{}, apperrors.NewInternal(
			"token_deposit_use_cases_missing",
			"execute order, place bid and cancel order use cases are required",
			nil,
		)
	}

	contract, appErr := valueobjects.NormalizeAddress("contract_address", command.ContractAddress)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	if _, appErr := valueobjects.ParseAmount(command.Amount); appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	deposit := dto.AssetPayload{
		Info:   dto.AssetInfoPayload{Kind: assetKindToken, ContractAddress: contract},
		Amount: command.Amount,
	}

	executePayload := command.Payload.ExecuteOrder
	bidPayload := command.Payload.Bid
	cancelPayload := command.Payload.CancelOrder
	present := 0
	for _, payload := range []*dto.OrderRefPayload{executePayload, bidPayload, cancelPayload} {
		if payload != nil {
			present++
		}
	}
	if present != 1 {
		return dto.MarketActionOutput{}, apperrors.NewValidation(
			"invalid_request",
			"payload must set exactly one of execute_order, bid or cancel_order",
			map[string]any{"field": "payload"},
		)
	}

	switch {
	case executePayload != nil:
		return u.executeOrder.Execute(ctx, dto.ExecuteOrderCommand{
			Caller:  command.Sender,
			OrderID: executePayload.OrderID,
			Payment: &deposit,
			Block:   command.Block,
		})
	case bidPayload != nil:
		return u.placeBid.Execute(ctx, dto.PlaceBidCommand{
			Caller:      command.Sender,
			OrderID:     bidPayload.OrderID,
			Bid:         deposit,
			FromDeposit: true,
			Block:       command.Block,
		})
	default:
		return u.cancelOrder.Execute(ctx, dto.CancelOrderCommand{
			Caller:      command.Sender,
			OrderID:     cancelPayload.OrderID,
			SuppliedFee: &deposit,
			Block:       command.Block,
		})
	}
}
