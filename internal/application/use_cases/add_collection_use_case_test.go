//go:build !integration

package use_cases

import (
	"context"
	"testing"

	"nftmarket/internal/application/dto"
)

func TestAddCollectionUseCaseSuccess(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	useCase := NewAddCollectionUseCase(testMarketConfig(t), catalog)

	_, appErr := useCase.Execute(context.Background(), dto.AddCollectionCommand{
		Caller:          ownerAddress,
		Collection:      collectionAddress,
		SupportedAssets: []dto.AssetInfoPayload{nativeInfoPayload("uusd")},
		Royalties: []dto.RoyaltyPayload{
			{Address: royaltyOneAddress, Rate: "0.02"},
			{Address: royaltyTwoAddress, Rate: "0.03"},
		},
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	info, ok := catalog.collections[collectionAddress]
	if !ok {
		t.Fatal("expected collection stored")
	}
	if len(info.Royalties) != 2 || info.Royalties[0].Rate.String() != "0.02" {
		t.Fatalf("unexpected royalties: %+v", info.Royalties)
	}
}

func TestAddCollectionUseCaseRejectsDuplicate(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)
	useCase := NewAddCollectionUseCase(testMarketConfig(t), catalog)

	_, appErr := useCase.Execute(context.Background(), dto.AddCollectionCommand{
		Caller:          ownerAddress,
		Collection:      collectionAddress,
		SupportedAssets: []dto.AssetInfoPayload{nativeInfoPayload("uusd")},
	})
	if appErr == nil || appErr.Code != "collection_exists" {
		t.Fatalf("expected collection_exists, got %+v", appErr)
	}
}

func TestAddCollectionUseCaseRejectsRoyaltySumAboveOne(t *testing.T) {
	useCase := NewAddCollectionUseCase(testMarketConfig(t), newFakeCollectionCatalog())

	_, appErr := useCase.Execute(context.Background(), dto.AddCollectionCommand{
		Caller:          ownerAddress,
		Collection:      collectionAddress,
		SupportedAssets: []dto.AssetInfoPayload{nativeInfoPayload("uusd")},
		Royalties: []dto.RoyaltyPayload{
			{Address: royaltyOneAddress, Rate: "0.6"},
			{Address: royaltyTwoAddress, Rate: "0.5"},
		},
	})
	if appErr == nil || appErr.Code != "invalid_royalty_rate" {
		t.Fatalf("expected invalid_royalty_rate, got %+v", appErr)
	}
}

func TestAddCollectionUseCaseRejectsNonOwner(t *testing.T) {
	useCase := NewAddCollectionUseCase(testMarketConfig(t), newFakeCollectionCatalog())

	_, appErr := useCase.Execute(context.Background(), dto.AddCollectionCommand{
		Caller:          buyerAddress,
		Collection:      collectionAddress,
		SupportedAssets: []dto.AssetInfoPayload{nativeInfoPayload("uusd")},
	})
	if appErr == nil || appErr.Code != "unauthorized" {
		t.Fatalf("expected unauthorized, got %+v", appErr)
	}
}

func TestUpdateCollectionUseCaseReplacesRoyalties(t *testing.T) {
	catalog := newFakeCollectionCatalog()
	storeTestCollection(t, catalog, nil)
	useCase := NewUpdateCollectionUseCase(testMarketConfig(t), catalog)

	royalties := []dto.RoyaltyPayload{{Address: royaltyOneAddress, Rate: "0.1"}}
	_, appErr := useCase.Execute(context.Background(), dto.UpdateCollectionCommand{
		Caller:     ownerAddress,
		Collection: collectionAddress,
		Royalties:  &royalties,
	})
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	info := catalog.collections[collectionAddress]
	if len(info.Royalties) != 1 || info.Royalties[0].Rate.String() != "0.1" {
		t.Fatalf("unexpected royalties: %+v", info.Royalties)
	}
	if len(info.SupportedAssets) != 2 {
		t.Fatalf("expected supported assets untouched, got %+v", info.SupportedAssets)
	}
}

func TestUpdateCollectionUseCaseUnknownCollection(t *testing.T) {
	useCase := NewUpdateCollectionUseCase(testMarketConfig(t), newFakeCollectionCatalog())

	_, appErr := useCase.Execute(context.Background(), dto.UpdateCollectionCommand{
		Caller:     ownerAddress,
		Collection: collectionAddress,
	})
	if appErr == nil || appErr.Code != "collection_not_found" {
		t.Fatalf("expected collection_not_found, got %+v", appErr)
	}
}
