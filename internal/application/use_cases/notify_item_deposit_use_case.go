package use_cases

import (
	"context"
	"strconv"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/domain/entities"
	"nftmarket/internal/domain/policies"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type notifyItemDepositUseCase struct {
	configStore portsout.MarketConfigStore
	catalog     portsout.CollectionCatalog
	ledger      portsout.OrderLedger
	publisher   portsout.SettlementEventPublisher
	clock       Clock
}

func NewNotifyItemDepositUseCase(
	configStore portsout.MarketConfigStore,
	catalog portsout.CollectionCatalog,
	ledger portsout.OrderLedger,
	publisher portsout.SettlementEventPublisher,
	clock Clock,
) portsin.NotifyItemDepositUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &notifyItemDepositUseCase{
		configStore: configStore,
		catalog:     catalog,
		ledger:      ledger,
		publisher:   publisher,
		clock:       clock,
	}
}

// Execute turns an escrowed item deposit into a listing. The notifying
// custody contract is the collection; its address must already be
// registered, and the listing price asset must be one it supports.
func (u *notifyItemDepositUseCase) Execute(ctx context.Context, command dto.ItemDepositCommand) (dto.MarketActionOutput, *apperrors.AppError) {
	if u.configStore == nil || u.catalog == nil || u.ledger == nil {
		return dto.MarketActionOutput{}, apperrors.NewInternal(
			"item_deposit_ports_missing",
			"market config store, collection catalog and order ledger are required",
			nil,
		)
	}

	collection, appErr := valueobjects.NormalizeAddress("collection_address", command.Collection)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	sender, appErr := valueobjects.NormalizeAddress("sender_address", command.Sender)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	if command.ItemID == "" {
		return dto.MarketActionOutput{}, apperrors.NewValidation(
			"invalid_request",
			"item_id is required",
			map[string]any{"field": "item_id"},
		)
	}

	info, found, appErr := u.catalog.Get(ctx, collection)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	if !found {
		return dto.MarketActionOutput{}, apperrors.NewCollectionNotFound(collection)
	}

	fixedListing := command.Payload.MakeFixedPriceListing
	auctionListing := command.Payload.MakeAuctionListing
	if (fixedListing == nil) == (auctionListing == nil) {
		return dto.MarketActionOutput{}, apperrors.NewValidation(
			"invalid_request",
			"payload must set exactly one of make_fixed_price_listing or make_auction_listing",
			map[string]any{"field": "payload"},
		)
	}

	var order entities.Order
	var action string
	if fixedListing != nil {
		order, appErr = u.buildFixedPriceOrder(sender, collection, command.ItemID, info, *fixedListing)
		action = "make_fixed_price_listing"
	} else {
		order, appErr = u.buildAuctionOrder(ctx, sender, collection, command.ItemID, info, *auctionListing, command.Block)
		action = "make_auction_listing"
	}
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	orderID, appErr := u.ledger.Create(ctx, order)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	output := dto.MarketActionOutput{
		Action:  action,
		OrderID: orderID,
		Attributes: map[string]string{
			"seller_address":     sender,
			"collection_address": collection,
			"item_id":            command.ItemID,
			"order_id":           strconv.FormatUint(orderID, 10),
		},
		Instructions: []dto.TransferInstructionResource{},
	}
	publishEvent(ctx, u.publisher, u.clock, output)

	return output, nil
}

func (u *notifyItemDepositUseCase) buildFixedPriceOrder(
	sender, collection, itemID string,
	info entities.CollectionInfo,
	listing dto.MakeFixedPriceListingPayload,
) (entities.Order, *apperrors.AppError) {
	price, appErr := parseAsset(listing.Price)
	if appErr != nil {
		return entities.Order{}, appErr
	}
	if !info.Supports(price.Info) {
		return entities.Order{}, apperrors.NewUnsupportedAsset()
	}

	return entities.NewOrder(sender, collection, itemID, &price, nil)
}

func (u *notifyItemDepositUseCase) buildAuctionOrder(
	ctx context.Context,
	sender, collection, itemID string,
	info entities.CollectionInfo,
	listing dto.MakeAuctionListingPayload,
	block dto.BlockInfoPayload,
) (entities.Order, *apperrors.AppError) {
	startPrice, appErr := parseAsset(listing.StartPrice)
	if appErr != nil {
		return entities.Order{}, appErr
	}

	// A buyout in a different asset kind than the start price is rejected
	// before the supported-asset lookup.
	var buyout *valueobjects.Asset
	if listing.BuyoutPrice != nil {
		price, appErr := parseAsset(*listing.BuyoutPrice)
		if appErr != nil {
			return entities.Order{}, appErr
		}
		if !price.Info.Equal(startPrice.Info) {
			return entities.Order{}, apperrors.NewAssetInfoMismatch()
		}
		buyout = &price
	}

	if !info.Supports(startPrice.Info) {
		return entities.Order{}, apperrors.NewUnsupportedAsset()
	}

	expiration, appErr := parseExpiration(listing.Expiration)
	if appErr != nil {
		return entities.Order{}, appErr
	}

	config, found, appErr := u.configStore.Get(ctx)
	if appErr != nil {
		return entities.Order{}, appErr
	}
	if !found {
		return entities.Order{}, apperrors.NewMarketNotInitialized()
	}
	if appErr := policies.ValidateAuctionWindow(expiration, parseBlockInfo(block), config); appErr != nil {
		return entities.Order{}, appErr
	}

	return entities.NewOrder(sender, collection, itemID, buyout, &entities.AuctionInfo{
		HighestBid: startPrice,
		Expiration: expiration,
	})
}
