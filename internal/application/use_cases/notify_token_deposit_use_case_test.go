//go:build !integration

package use_cases

import (
	"context"
	"testing"

	"nftmarket/internal/application/dto"
	"nftmarket/internal/domain/entities"
	valueobjects "nftmarket/internal/domain/value_objects"
)

func TestNotifyTokenDepositUseCaseDispatchesBid(t *testing.T) {
	ledger := newFakeOrderLedger()
	orderID := storeAuctionOrder(t, ledger, nil, entities.AuctionInfo{
		HighestBid: testTokenAsset(t, tokenAddress, 500),
		Expiration: valueobjects.NewHeightExpiration(100),
	})

	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)
	configStore := testMarketConfig(t)
	useCase := NewNotifyTokenDepositUseCase(
		NewExecuteOrderUseCase(ledger, catalog, nil, nil),
		NewPlaceBidUseCase(ledger, configStore, nil, nil),
		NewCancelOrderUseCase(ledger, configStore, nil, nil),
	)

	output, appErr := useCase.Execute(context.Background(), dto.TokenDepositCommand{
		ContractAddress: tokenAddress,
		Sender:          bidderAddress,
		Amount:          "550",
		Payload: dto.TokenDepositPayload{
			Bid: &dto.OrderRefPayload{OrderID: orderID},
		},
		Block: testBlock(10),
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}
	if output.Action != "bid" {
		t.Fatalf("expected bid action, got %q", output.Action)
	}

	order := ledger.orders[orderID]
	if order.Auction.Bidder != bidderAddress {
		t.Fatalf("expected token bid recorded, got %+v", order.Auction)
	}
}

func TestNotifyTokenDepositUseCaseDispatchesExecuteOrder(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)
	ledger := newFakeOrderLedger()
	orderID := storeFixedPriceOrder(t, ledger, testTokenAsset(t, tokenAddress, 1000))

	configStore := testMarketConfig(t)
	useCase := NewNotifyTokenDepositUseCase(
		NewExecuteOrderUseCase(ledger, catalog, nil, nil),
		NewPlaceBidUseCase(ledger, configStore, nil, nil),
		NewCancelOrderUseCase(ledger, configStore, nil, nil),
	)

	_, appErr := useCase.Execute(context.Background(), dto.TokenDepositCommand{
		ContractAddress: tokenAddress,
		Sender:          buyerAddress,
		Amount:          "999",
		Payload: dto.TokenDepositPayload{
			ExecuteOrder: &dto.OrderRefPayload{OrderID: orderID},
		},
		Block: testBlock(10),
	})
	if appErr == nil || appErr.Code != "token_mismatch" {
		t.Fatalf("expected token_mismatch for short deposit, got %+v", appErr)
	}

	output, execErr := useCase.Execute(context.Background(), dto.TokenDepositCommand{
		ContractAddress: tokenAddress,
		Sender:          buyerAddress,
		Amount:          "1000",
		Payload: dto.TokenDepositPayload{
			ExecuteOrder: &dto.OrderRefPayload{OrderID: orderID},
		},
		Block: testBlock(10),
	})
	if execErr != nil {
		t.Fatalf("expected no error, got %+v", execErr)
	}
	if output.Action != "execute_order" {
		t.Fatalf("expected execute_order action, got %q", output.Action)
	}
}

func TestNotifyTokenDepositUseCaseRequiresExactlyOnePayload(t *testing.T) {
	useCase := NewNotifyTokenDepositUseCase(
		NewExecuteOrderUseCase(newFakeOrderLedger(), newFakeCollectionCatalog(), nil, nil),
		NewPlaceBidUseCase(newFakeOrderLedger(), testMarketConfig(t), nil, nil),
		NewCancelOrderUseCase(newFakeOrderLedger(), testMarketConfig(t), nil, nil),
	)

	commands := []dto.TokenDepositPayload{
		{},
		{
			ExecuteOrder: &dto.OrderRefPayload{OrderID: 1},
			Bid:          &dto.OrderRefPayload{OrderID: 1},
		},
	}
	for _, payload := range commands {
		_, appErr := useCase.Execute(context.Background(), dto.TokenDepositCommand{
			ContractAddress: tokenAddress,
			Sender:          buyerAddress,
			Amount:          "100",
			Payload:         payload,
			Block:           testBlock(10),
		})
		if appErr == nil || appErr.Code != "invalid_request" {
			t.Fatalf("expected invalid_request, got %+v", appErr)
		}
	}
}
