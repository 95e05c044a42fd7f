//go:build !integration

package use_cases

import (
	"context"
	"math/big"
	"sort"
	"testing"
	"time"

	"nftmarket/internal/application/dto"
	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/domain/entities"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

const (
	ownerAddress      = "0xaaaa00000000000000000000000000000000aaaa"
	sellerAddress     = "0x1111111111111111111111111111111111111111"
	buyerAddress      = "0x2222222222222222222222222222222222222222"
	bidderAddress     = "0x3333333333333333333333333333333333333333"
	royaltyOneAddress = "0x4444444444444444444444444444444444444444"
	royaltyTwoAddress = "0x5555555555555555555555555555555555555555"
	collectionAddress = "0x6666666666666666666666666666666666666666"
	tokenAddress      = "0x7777777777777777777777777777777777777777"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) NowUTC() time.Time {
	return c.now
}

type fakeOrderLedger struct {
	orders      map[uint64]entities.Order
	nextID      uint64
	createCalls int
	removeCalls int
	updateCalls int
	lastFilter  portsout.OrderListFilter
}

func newFakeOrderLedger() *fakeOrderLedger {
	return &fakeOrderLedger{orders: map[uint64]entities.Order{}, nextID: 1}
}

func (f *fakeOrderLedger) Create(_ context.Context, order entities.Order) (uint64, *apperrors.AppError) {
	f.createCalls++
	id := f.nextID
	f.nextID++
	order.ID = id
	f.orders[id] = order

	return id, nil
}

func (f *fakeOrderLedger) Get(_ context.Context, orderID uint64) (entities.Order, bool, *apperrors.AppError) {
	order, ok := f.orders[orderID]
	return order, ok, nil
}

func (f *fakeOrderLedger) UpdateAuction(_ context.Context, orderID uint64, auction entities.AuctionInfo) *apperrors.AppError {
	f.updateCalls++
	order, ok := f.orders[orderID]
	if !ok {
		return apperrors.NewOrderNotFound(orderID)
	}
	order.Auction = &auction
	f.orders[orderID] = order

	return nil
}

func (f *fakeOrderLedger) Remove(_ context.Context, orderID uint64) *apperrors.AppError {
	f.removeCalls++
	if _, ok := f.orders[orderID]; !ok {
		return apperrors.NewOrderNotFound(orderID)
	}
	delete(f.orders, orderID)

	return nil
}

func (f *fakeOrderLedger) List(_ context.Context, filter portsout.OrderListFilter) ([]entities.Order, *apperrors.AppError) {
	f.lastFilter = filter

	ids := make([]uint64, 0, len(f.orders))
	for id := range f.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	orders := make([]entities.Order, 0, filter.Limit)
	for _, id := range ids {
		if filter.StartAfter != nil && id <= *filter.StartAfter {
			continue
		}
		order := f.orders[id]
		if filter.Seller != "" && order.Seller != filter.Seller {
			continue
		}
		orders = append(orders, order)
		if uint32(len(orders)) == filter.Limit {
			break
		}
	}

	return orders, nil
}

type fakeCollectionCatalog struct {
	collections map[string]entities.CollectionInfo
}

func newFakeCollectionCatalog() *fakeCollectionCatalog {
	return &fakeCollectionCatalog{collections: map[string]entities.CollectionInfo{}}
}

func (f *fakeCollectionCatalog) Create(_ context.Context, info entities.CollectionInfo) *apperrors.AppError {
	if _, ok := f.collections[info.Collection]; ok {
		return apperrors.NewCollectionExist(info.Collection)
	}
	f.collections[info.Collection] = info

	return nil
}

func (f *fakeCollectionCatalog) Get(_ context.Context, collection string) (entities.CollectionInfo, bool, *apperrors.AppError) {
	info, ok := f.collections[collection]
	return info, ok, nil
}

func (f *fakeCollectionCatalog) Update(_ context.Context, info entities.CollectionInfo) *apperrors.AppError {
	if _, ok := f.collections[info.Collection]; !ok {
		return apperrors.NewCollectionNotFound(info.Collection)
	}
	f.collections[info.Collection] = info

	return nil
}

func (f *fakeCollectionCatalog) List(_ context.Context, filter portsout.CollectionListFilter) ([]entities.CollectionInfo, *apperrors.AppError) {
	addresses := make([]string, 0, len(f.collections))
	for address := range f.collections {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	infos := make([]entities.CollectionInfo, 0, filter.Limit)
	for _, address := range addresses {
		if filter.StartAfter != "" && address <= filter.StartAfter {
			continue
		}
		infos = append(infos, f.collections[address])
		if uint32(len(infos)) == filter.Limit {
			break
		}
	}

	return infos, nil
}

type fakeMarketConfigStore struct {
	config *entities.MarketConfig
}

func (f *fakeMarketConfigStore) Initialize(_ context.Context, config entities.MarketConfig) *apperrors.AppError {
	if f.config != nil {
		return apperrors.NewConflict(
			"market_already_initialized",
			"market config has already been set up",
			nil,
		)
	}
	f.config = &config

	return nil
}

func (f *fakeMarketConfigStore) Get(_ context.Context) (entities.MarketConfig, bool, *apperrors.AppError) {
	if f.config == nil {
		return entities.MarketConfig{}, false, nil
	}

	return *f.config, true, nil
}

func (f *fakeMarketConfigStore) Update(_ context.Context, config entities.MarketConfig) *apperrors.AppError {
	if f.config == nil {
		return apperrors.NewMarketNotInitialized()
	}
	f.config = &config

	return nil
}

type fakeSettlementEventPublisher struct {
	events []dto.SettlementEvent
}

func (f *fakeSettlementEventPublisher) Publish(_ context.Context, event dto.SettlementEvent) {
	f.events = append(f.events, event)
}

func testMarketConfig(t *testing.T) *fakeMarketConfigStore {
	t.Helper()
	config, appErr := entities.NewMarketConfig(
		ownerAddress,
		valueobjects.MustRate("0.1"),
		100,
		3600,
		valueobjects.MustRate("0.05"),
	)
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	return &fakeMarketConfigStore{config: &config}
}

func nativeInfoPayload(denom string) dto.AssetInfoPayload {
	return dto.AssetInfoPayload{Kind: "native", Denom: denom}
}

func nativeAssetPayload(denom, amount string) dto.AssetPayload {
	return dto.AssetPayload{Info: nativeInfoPayload(denom), Amount: amount}
}

func tokenAssetPayload(contract, amount string) dto.AssetPayload {
	return dto.AssetPayload{
		Info:   dto.AssetInfoPayload{Kind: "token", ContractAddress: contract},
		Amount: amount,
	}
}

func testNativeAsset(t *testing.T, denom string, amount int64) valueobjects.Asset {
	t.Helper()
	info, appErr := valueobjects.NewNativeAssetInfo(denom)
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	return valueobjects.NewAsset(info, big.NewInt(amount))
}

func testTokenAsset(t *testing.T, contract string, amount int64) valueobjects.Asset {
	t.Helper()
	info, appErr := valueobjects.NewTokenAssetInfo(contract)
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	return valueobjects.NewAsset(info, big.NewInt(amount))
}

func storeTestCollection(t *testing.T, catalog *fakeCollectionCatalog, royalties []entities.Royalty) {
	t.Helper()
	nativeInfo, appErr := valueobjects.NewNativeAssetInfo("uusd")
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}
	tokenInfo, appErr := valueobjects.NewTokenAssetInfo(tokenAddress)
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	info, appErr := entities.NewCollectionInfo(
		collectionAddress,
		[]valueobjects.AssetInfo{nativeInfo, tokenInfo},
		royalties,
	)
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}
	catalog.collections[collectionAddress] = info
}

func storeFixedPriceOrder(t *testing.T, ledger *fakeOrderLedger, price valueobjects.Asset) uint64 {
	t.Helper()
	order, appErr := entities.NewOrder(sellerAddress, collectionAddress, "42", &price, nil)
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	id, createErr := ledger.Create(context.Background(), order)
	if createErr != nil {
		t.Fatalf("expected no error, got %+v", createErr)
	}

	return id
}

func storeAuctionOrder(t *testing.T, ledger *fakeOrderLedger, buyout *valueobjects.Asset, auction entities.AuctionInfo) uint64 {
	t.Helper()
	order, appErr := entities.NewOrder(sellerAddress, collectionAddress, "42", buyout, &auction)
	if appErr != nil {
		t.Fatalf("expected no error, got %+v", appErr)
	}

	id, createErr := ledger.Create(context.Background(), order)
	if createErr != nil {
		t.Fatalf("expected no error, got %+v", createErr)
	}

	return id
}

func testBlock(height uint64) dto.BlockInfoPayload {
	return dto.BlockInfoPayload{
		Height: height,
		Time:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}
