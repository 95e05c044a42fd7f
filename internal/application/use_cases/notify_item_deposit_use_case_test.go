//go:build !integration

package use_cases

import (
	"context"
	"testing"
	"time"

	"nftmarket/internal/application/dto"
)

func TestNotifyItemDepositUseCaseFixedPriceListing(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)
	ledger := newFakeOrderLedger()
	publisher := &fakeSettlementEventPublisher{}

	useCase := NewNotifyItemDepositUseCase(testMarketConfig(t), catalog, ledger, publisher, fixedClock{now: time.Now().UTC()})
	output, appErr := useCase.Execute(context.Background(), dto.ItemDepositCommand{
		Collection: collectionAddress,
		Sender:     sellerAddress,
		ItemID:     "42",
		Payload: dto.ItemDepositPayload{
			MakeFixedPriceListing: &dto.MakeFixedPriceListingPayload{
				Price: nativeAssetPayload("uusd", "1000"),
			},
		},
		Block: testBlock(10),
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	if output.OrderID != 1 {
		t.Fatalf("expected first order id 1, got %d", output.OrderID)
	}
	order, ok := ledger.orders[1]
	if !ok {
		t.Fatal("expected order to be stored")
	}
	if order.Kind() != "fixed_price" {
		t.Fatalf("expected fixed_price kind, got %s", order.Kind())
	}
	if len(publisher.events) != 1 || publisher.events[0].Action != "make_fixed_price_listing" {
		t.Fatalf("expected one listing event, got %+v", publisher.events)
	}
}

func TestNotifyItemDepositUseCaseOrderIDsAreMonotonic(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)
	ledger := newFakeOrderLedger()

	useCase := NewNotifyItemDepositUseCase(testMarketConfig(t), catalog, ledger, nil, nil)
	for i, expected := range []uint64{1, 2, 3} {
		output, appErr := useCase.Execute(context.Background(), dto.ItemDepositCommand{
			Collection: collectionAddress,
			Sender:     sellerAddress,
			ItemID:     string(rune('a' + i)),
			Payload: dto.ItemDepositPayload{
				MakeFixedPriceListing: &dto.MakeFixedPriceListingPayload{
					Price: nativeAssetPayload("uusd", "1000"),
				},
			},
			Block: testBlock(10),
		})
		if appErr != nil {
			t.Fatalf("expected no error, got %+v", appErr)
		}
		if output.OrderID != expected {
			t.Fatalf("expected order id %d, got %d", expected, output.OrderID)
		}
	}
}

func TestNotifyItemDepositUseCaseRejectsUnsupportedAsset(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)

	useCase := NewNotifyItemDepositUseCase(testMarketConfig(t), catalog, newFakeOrderLedger(), nil, nil)
	_, appErr := useCase.Execute(context.Background(), dto.ItemDepositCommand{
		Collection: collectionAddress,
		Sender:     sellerAddress,
		ItemID:     "42",
		Payload: dto.ItemDepositPayload{
			MakeFixedPriceListing: &dto.MakeFixedPriceListingPayload{
				Price: nativeAssetPayload("uluna", "1000"),
			},
		},
		Block: testBlock(10),
	})
	if appErr == nil || appErr.Code != "unsupported_asset" {
		t.Fatalf("expected unsupported_asset, got %+v", appErr)
	}
}

func TestNotifyItemDepositUseCaseRejectsUnknownCollection(t *testing.T) {
	useCase := NewNotifyItemDepositUseCase(testMarketConfig(t), newFakeCollectionCatalog(), newFakeOrderLedger(), nil, nil)

	_, appErr := useCase.Execute(context.Background(), dto.ItemDepositCommand{
		Collection: collectionAddress,
		Sender:     sellerAddress,
		ItemID:     "42",
		Payload: dto.ItemDepositPayload{
			MakeFixedPriceListing: &dto.MakeFixedPriceListingPayload{
				Price: nativeAssetPayload("uusd", "1000"),
			},
		},
		Block: testBlock(10),
	})
	if appErr == nil || appErr.Code != "collection_not_found" {
		t.Fatalf("expected collection_not_found, got %+v", appErr)
	}
}

func TestNotifyItemDepositUseCaseAuctionListing(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)
	ledger := newFakeOrderLedger()

	useCase := NewNotifyItemDepositUseCase(testMarketConfig(t), catalog, ledger, nil, nil)
	height := uint64(100)
	output, appErr := useCase.Execute(context.Background(), dto.ItemDepositCommand{
		Collection: collectionAddress,
		Sender:     sellerAddress,
		ItemID:     "42",
		Payload: dto.ItemDepositPayload{
			MakeAuctionListing: &dto.MakeAuctionListingPayload{
				StartPrice:  nativeAssetPayload("uusd", "500"),
				Expiration:  dto.ExpirationPayload{AtHeight: &height},
				BuyoutPrice: func() *dto.AssetPayload { p := nativeAssetPayload("uusd", "2000"); return &p }(),
			},
		},
		Block: testBlock(10),
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	order := ledger.orders[output.OrderID]
	if order.Kind() != "auction_with_buyout" {
		t.Fatalf("expected auction_with_buyout, got %s", order.Kind())
	}
	if order.Auction.Bidder != "" {
		t.Fatalf("expected unbid auction, got bidder %q", order.Auction.Bidder)
	}
	if order.Auction.HighestBid.Amount.String() != "500" {
		t.Fatalf("expected starting price 500, got %s", order.Auction.HighestBid.Amount)
	}
}

func TestNotifyItemDepositUseCaseRejectsNeverExpiration(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)

	useCase := NewNotifyItemDepositUseCase(testMarketConfig(t), catalog, newFakeOrderLedger(), nil, nil)
	_, appErr := useCase.Execute(context.Background(), dto.ItemDepositCommand{
		Collection: collectionAddress,
		Sender:     sellerAddress,
		ItemID:     "42",
		Payload: dto.ItemDepositPayload{
			MakeAuctionListing: &dto.MakeAuctionListingPayload{
				StartPrice: nativeAssetPayload("uusd", "500"),
				Expiration: dto.ExpirationPayload{Never: &struct{}{}},
			},
		},
		Block: testBlock(10),
	})
	if appErr == nil || appErr.Code != "never_expiration" {
		t.Fatalf("expected never_expiration, got %+v", appErr)
	}
}

func TestNotifyItemDepositUseCaseRejectsOverlongAuction(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)

	useCase := NewNotifyItemDepositUseCase(testMarketConfig(t), catalog, newFakeOrderLedger(), nil, nil)
	height := uint64(111)
	_, appErr := useCase.Execute(context.Background(), dto.ItemDepositCommand{
		Collection: collectionAddress,
		Sender:     sellerAddress,
		ItemID:     "42",
		Payload: dto.ItemDepositPayload{
			MakeAuctionListing: &dto.MakeAuctionListingPayload{
				StartPrice: nativeAssetPayload("uusd", "500"),
				Expiration: dto.ExpirationPayload{AtHeight: &height},
			},
		},
		Block: testBlock(10),
	})
	if appErr == nil || appErr.Code != "max_duration" {
		t.Fatalf("expected max_duration, got %+v", appErr)
	}
}

func TestNotifyItemDepositUseCaseRejectsBuyoutAssetMismatch(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)

	useCase := NewNotifyItemDepositUseCase(testMarketConfig(t), catalog, newFakeOrderLedger(), nil, nil)
	height := uint64(100)
	buyout := tokenAssetPayload(tokenAddress, "2000")
	_, appErr := useCase.Execute(context.Background(), dto.ItemDepositCommand{
		Collection: collectionAddress,
		Sender:     sellerAddress,
		ItemID:     "42",
		Payload: dto.ItemDepositPayload{
			MakeAuctionListing: &dto.MakeAuctionListingPayload{
				StartPrice:  nativeAssetPayload("uusd", "500"),
				Expiration:  dto.ExpirationPayload{AtHeight: &height},
				BuyoutPrice: &buyout,
			},
		},
		Block: testBlock(10),
	})
	if appErr == nil || appErr.Code != "asset_info_mismatch" {
		t.Fatalf("expected asset_info_mismatch, got %+v", appErr)
	}
}

func TestNotifyItemDepositUseCaseBuyoutMismatchPrecedesUnsupportedAsset(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)

	useCase := NewNotifyItemDepositUseCase(testMarketConfig(t), catalog, newFakeOrderLedger(), nil, nil)
	height := uint64(100)
	buyout := tokenAssetPayload(tokenAddress, "2000")
	_, appErr := useCase.Execute(context.Background(), dto.ItemDepositCommand{
		Collection: collectionAddress,
		Sender:     sellerAddress,
		ItemID:     "42",
		Payload: dto.ItemDepositPayload{
			MakeAuctionListing: &dto.MakeAuctionListingPayload{
				StartPrice:  nativeAssetPayload("uluna", "500"),
				Expiration:  dto.ExpirationPayload{AtHeight: &height},
				BuyoutPrice: &buyout,
			},
		},
		Block: testBlock(10),
	})
	if appErr == nil || appErr.Code != "asset_info_mismatch" {
		t.Fatalf("expected asset_info_mismatch to win over unsupported_asset, got %+v", appErr)
	}
}

func TestNotifyItemDepositUseCaseRejectsAmbiguousPayload(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)

	useCase := NewNotifyItemDepositUseCase(testMarketConfig(t), catalog, newFakeOrderLedger(), nil, nil)
	_, appErr := useCase.Execute(context.Background(), dto.ItemDepositCommand{
		Collection: collectionAddress,
		Sender:     sellerAddress,
		ItemID:     "42",
		Payload:    dto.ItemDepositPayload{},
		Block:      testBlock(10),
	})
	if appErr == nil || appErr.Code != "invalid_request" {
		t.Fatalf("expected invalid_request, got %+v", appErr)
	}
}
