//go:build !integration

package use_cases

import (
	"context"
	"testing"

	"nftmarket/internal/application/dto"
	"nftmarket/internal/domain/entities"
	valueobjects "nftmarket/internal/domain/value_objects"
)

func TestPlaceBidUseCaseFirstBidMustClearFloorOverStartingPrice(t *testing.T) {
	ledger := newFakeOrderLedger()
	orderID := storeAuctionOrder(t, ledger, nil, entities.AuctionInfo{
		HighestBid: testNativeAsset(t, "uusd", 100_000_000),
		Expiration: valueobjects.NewHeightExpiration(100),
	})

	useCase := NewPlaceBidUseCase(ledger, testMarketConfig(t), nil, nil)

	// 10% min increase applies to the starting price as well: the floor for
	// the very first bid is 110,000,000, not the starting price itself.
	_, appErr := useCase.Execute(context.Background(), dto.PlaceBidCommand{
		Caller:        bidderAddress,
		OrderID:       orderID,
		Bid:           nativeAssetPayload("uusd", "101000000"),
		AttachedFunds: []dto.CoinPayload{{Denom: "uusd", Amount: "101000000"}},
		Block:         testBlock(10),
	})
	if appErr == nil || appErr.Code != "min_price" {
		t.Fatalf("expected min_price, got %+v", appErr)
	}
	if appErr.Details["min_bid_amount"] != "110000000" {
		t.Fatalf("expected floor 110000000, got %v", appErr.Details["min_bid_amount"])
	}

	output, bidErr := useCase.Execute(context.Background(), dto.PlaceBidCommand{
		Caller:        bidderAddress,
		OrderID:       orderID,
		Bid:           nativeAssetPayload("uusd", "110000000"),
		AttachedFunds: []dto.CoinPayload{{Denom: "uusd", Amount: "110000000"}},
		Block:         testBlock(10),
	})
	if bidErr != nil {
		t.Fatalf("expected no error, got %+v", bidErr)
	}
	if len(output.Instructions) != 0 {
		t.Fatalf("expected no refund for the first bid, got %+v", output.Instructions)
	}

	order := ledger.orders[orderID]
	if order.Auction.Bidder != bidderAddress {
		t.Fatalf("expected bidder recorded, got %q", order.Auction.Bidder)
	}
}

func TestPlaceBidUseCaseEnforcesMinIncreaseAndRefundsPreviousBid(t *testing.T) {
	ledger := newFakeOrderLedger()
	orderID := storeAuctionOrder(t, ledger, nil, entities.AuctionInfo{
		HighestBid: testNativeAsset(t, "uusd", 1000),
		Bidder:     bidderAddress,
		Expiration: valueobjects.NewHeightExpiration(100),
	})

	useCase := NewPlaceBidUseCase(ledger, testMarketConfig(t), nil, nil)

	_, appErr := useCase.Execute(context.Background(), dto.PlaceBidCommand{
		Caller:        buyerAddress,
		OrderID:       orderID,
		Bid:           nativeAssetPayload("uusd", "1099"),
		AttachedFunds: []dto.CoinPayload{{Denom: "uusd", Amount: "1099"}},
		Block:         testBlock(10),
	})
	if appErr == nil || appErr.Code != "min_price" {
		t.Fatalf("expected min_price, got %+v", appErr)
	}
	if appErr.Details["min_bid_amount"] != "1100" {
		t.Fatalf("expected floor 1100, got %v", appErr.Details["min_bid_amount"])
	}

	output, bidErr := useCase.Execute(context.Background(), dto.PlaceBidCommand{
		Caller:        buyerAddress,
		OrderID:       orderID,
		Bid:           nativeAssetPayload("uusd", "1100"),
		AttachedFunds: []dto.CoinPayload{{Denom: "uusd", Amount: "1100"}},
		Block:         testBlock(10),
	})
	if bidErr != nil {
		t.Fatalf("expected no error, got %+v", bidErr)
	}

	if len(output.Instructions) != 1 {
		t.Fatalf("expected previous bid refund, got %+v", output.Instructions)
	}
	if output.Instructions[0].Recipient != bidderAddress || output.Instructions[0].Amount != "1000" {
		t.Fatalf("unexpected refund: %+v", output.Instructions[0])
	}

	order := ledger.orders[orderID]
	if order.Auction.Bidder != buyerAddress || order.Auction.HighestBid.Amount.String() != "1100" {
		t.Fatalf("unexpected auction state: %+v", order.Auction)
	}
}

func TestPlaceBidUseCaseRejectsNonAuction(t *testing.T) {
	ledger := newFakeOrderLedger()
	orderID := storeFixedPriceOrder(t, ledger, testNativeAsset(t, "uusd", 1000))

	useCase := NewPlaceBidUseCase(ledger, testMarketConfig(t), nil, nil)
	_, appErr := useCase.Execute(context.Background(), dto.PlaceBidCommand{
		Caller:        bidderAddress,
		OrderID:       orderID,
		Bid:           nativeAssetPayload("uusd", "1000"),
		AttachedFunds: []dto.CoinPayload{{Denom: "uusd", Amount: "1000"}},
		Block:         testBlock(10),
	})
	if appErr == nil || appErr.Code != "not_auction" {
		t.Fatalf("expected not_auction, got %+v", appErr)
	}
}

func TestPlaceBidUseCaseRejectsExpiredAuction(t *testing.T) {
	ledger := newFakeOrderLedger()
	orderID := storeAuctionOrder(t, ledger, nil, entities.AuctionInfo{
		HighestBid: testNativeAsset(t, "uusd", 500),
		Expiration: valueobjects.NewHeightExpiration(100),
	})

	useCase := NewPlaceBidUseCase(ledger, testMarketConfig(t), nil, nil)
	_, appErr := useCase.Execute(context.Background(), dto.PlaceBidCommand{
		Caller:        bidderAddress,
		OrderID:       orderID,
		Bid:           nativeAssetPayload("uusd", "500"),
		AttachedFunds: []dto.CoinPayload{{Denom: "uusd", Amount: "500"}},
		Block:         testBlock(100),
	})
	if appErr == nil || appErr.Code != "expired" {
		t.Fatalf("expected expired, got %+v", appErr)
	}
}

func TestPlaceBidUseCaseRejectsAssetKindMismatch(t *testing.T) {
	ledger := newFakeOrderLedger()
	orderID := storeAuctionOrder(t, ledger, nil, entities.AuctionInfo{
		HighestBid: testNativeAsset(t, "uusd", 500),
		Expiration: valueobjects.NewHeightExpiration(100),
	})

	useCase := NewPlaceBidUseCase(ledger, testMarketConfig(t), nil, nil)
	_, appErr := useCase.Execute(context.Background(), dto.PlaceBidCommand{
		Caller:      bidderAddress,
		OrderID:     orderID,
		Bid:         tokenAssetPayload(tokenAddress, "500"),
		FromDeposit: true,
		Block:       testBlock(10),
	})
	if appErr == nil || appErr.Code != "asset_info_mismatch" {
		t.Fatalf("expected asset_info_mismatch, got %+v", appErr)
	}
}

func TestPlaceBidUseCaseRejectsInexactAttachedFunds(t *testing.T) {
	ledger := newFakeOrderLedger()
	orderID := storeAuctionOrder(t, ledger, nil, entities.AuctionInfo{
		HighestBid: testNativeAsset(t, "uusd", 500),
		Expiration: valueobjects.NewHeightExpiration(100),
	})

	useCase := NewPlaceBidUseCase(ledger, testMarketConfig(t), nil, nil)
	_, appErr := useCase.Execute(context.Background(), dto.PlaceBidCommand{
		Caller:        bidderAddress,
		OrderID:       orderID,
		Bid:           nativeAssetPayload("uusd", "600"),
		AttachedFunds: []dto.CoinPayload{{Denom: "uusd", Amount: "500"}},
		Block:         testBlock(10),
	})
	if appErr == nil || appErr.Code != "token_mismatch" {
		t.Fatalf("expected token_mismatch, got %+v", appErr)
	}
}
