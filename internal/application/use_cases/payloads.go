package use_cases

import (
	"nftmarket/internal/application/dto"
	"nftmarket/internal/domain/entities"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

const (
	assetKindNative = "native"
	assetKindToken  = "token"
)

func parseAssetInfo(payload dto.AssetInfoPayload) (valueobjects.AssetInfo, *apperrors.AppError) {
	switch payload.Kind {
	case assetKindNative:
		return valueobjects.NewNativeAssetInfo(payload.Denom)
	case assetKindToken:
		return valueobjects.NewTokenAssetInfo(payload.ContractAddress)
	default:
		return valueobjects.AssetInfo{}, apperrors.NewValidation(
			"invalid_request",
			"asset kind must be native or token",
			map[string]any{"field": "info.kind", "value": payload.Kind},
		)
	}
}

func parseAsset(payload dto.AssetPayload) (valueobjects.Asset, *apperrors.AppError) {
	info, appErr := parseAssetInfo(payload.Info)
	if appErr != nil {
		return valueobjects.Asset{}, appErr
	}

	amount, appErr := valueobjects.ParseAmount(payload.Amount)
	if appErr != nil {
		return valueobjects.Asset{}, appErr
	}

	return valueobjects.NewAsset(info, amount), nil
}

func parseAttachedFunds(payloads []dto.CoinPayload) ([]valueobjects.Coin, *apperrors.AppError) {
	coins := make([]valueobjects.Coin, 0, len(payloads))
	for _, payload := range payloads {
		amount, appErr := valueobjects.ParseAmount(payload.Amount)
		if appErr != nil {
			return nil, appErr
		}
		coins = append(coins, valueobjects.Coin{Denom: payload.Denom, Amount: amount})
	}

	return coins, nil
}

func parseExpiration(payload dto.ExpirationPayload) (valueobjects.Expiration, *apperrors.AppError) {
	if payload.Never != nil {
		return valueobjects.Expiration{}, apperrors.NewNeverExpiration()
	}

	switch {
	case payload.AtHeight != nil && payload.AtTime == nil:
		return valueobjects.NewHeightExpiration(*payload.AtHeight), nil
	case payload.AtTime != nil && payload.AtHeight == nil:
		return valueobjects.NewTimeExpiration(*payload.AtTime), nil
	default:
		return valueobjects.Expiration{}, apperrors.NewValidation(
			"invalid_request",
			"expiration must set exactly one of at_height or at_time",
			map[string]any{"field": "expiration"},
		)
	}
}

func parseBlockInfo(payload dto.BlockInfoPayload) valueobjects.BlockInfo {
	return valueobjects.BlockInfo{Height: payload.Height, Time: payload.Time.UTC()}
}

func parseRoyalties(payloads []dto.RoyaltyPayload) ([]entities.Royalty, *apperrors.AppError) {
	royalties := make([]entities.Royalty, 0, len(payloads))
	for _, payload := range payloads {
		address, appErr := valueobjects.NormalizeAddress("royalties.address", payload.Address)
		if appErr != nil {
			return nil, appErr
		}
		rate, appErr := valueobjects.ParseRate(payload.Rate)
		if appErr != nil {
			return nil, appErr
		}
		royalties = append(royalties, entities.Royalty{Address: address, Rate: rate})
	}

	return royalties, nil
}

func parseAssetInfos(payloads []dto.AssetInfoPayload) ([]valueobjects.AssetInfo, *apperrors.AppError) {
	infos := make([]valueobjects.AssetInfo, 0, len(payloads))
	for _, payload := range payloads {
		info, appErr := parseAssetInfo(payload)
		if appErr != nil {
			return nil, appErr
		}
		infos = append(infos, info)
	}

	return infos, nil
}

func assetInfoResource(info valueobjects.AssetInfo) dto.AssetInfoPayload {
	switch info.Kind {
	case valueobjects.AssetKindToken:
		return dto.AssetInfoPayload{Kind: assetKindToken, ContractAddress: info.ContractAddress}
	default:
		return dto.AssetInfoPayload{Kind: assetKindNative, Denom: info.Denom}
	}
}

func assetResource(asset valueobjects.Asset) dto.AssetPayload {
	return dto.AssetPayload{
		Info:   assetInfoResource(asset.Info),
		Amount: valueobjects.FormatAmount(asset.Amount),
	}
}

func expirationResource(expiration valueobjects.Expiration) dto.ExpirationPayload {
	switch expiration.Kind {
	case valueobjects.ExpirationAtTime:
		at := expiration.Time
		return dto.ExpirationPayload{AtTime: &at}
	default:
		height := expiration.Height
		return dto.ExpirationPayload{AtHeight: &height}
	}
}

func royaltyResources(royalties []entities.Royalty) []dto.RoyaltyPayload {
	resources := make([]dto.RoyaltyPayload, 0, len(royalties))
	for _, royalty := range royalties {
		resources = append(resources, dto.RoyaltyPayload{Address: royalty.Address, Rate: royalty.Rate.String()})
	}

	return resources
}

func orderResource(order entities.Order) dto.OrderResource {
	resource := dto.OrderResource{
		ID:         order.ID,
		Kind:       string(order.Kind()),
		Seller:     order.Seller,
		Collection: order.Collection,
		ItemID:     order.ItemID,
	}

	if order.FixedPrice != nil {
		fixedPrice := assetResource(*order.FixedPrice)
		resource.FixedPrice = &fixedPrice
	}
	if order.Auction != nil {
		resource.Auction = &dto.AuctionInfoResource{
			HighestBid: assetResource(order.Auction.HighestBid),
			Bidder:     order.Auction.Bidder,
			Expiration: expirationResource(order.Auction.Expiration),
		}
	}

	return resource
}

func collectionResource(info entities.CollectionInfo) dto.CollectionResource {
	supported := make([]dto.AssetInfoPayload, 0, len(info.SupportedAssets))
	for _, assetInfo := range info.SupportedAssets {
		supported = append(supported, assetInfoResource(assetInfo))
	}

	return dto.CollectionResource{
		Collection:      info.Collection,
		SupportedAssets: supported,
		Royalties:       royaltyResources(info.Royalties),
	}
}

func marketConfigResource(config entities.MarketConfig) dto.MarketConfigResource {
	return dto.MarketConfigResource{
		Owner:                     config.Owner,
		MinIncrease:               config.MinIncrease.String(),
		MaxAuctionDurationBlocks:  config.MaxAuctionDurationBlocks,
		MaxAuctionDurationSeconds: config.MaxAuctionDurationSeconds,
		CancelFeeRate:             config.CancelFeeRate.String(),
	}
}

func instructionResources(instructions []entities.TransferInstruction) []dto.TransferInstructionResource {
	resources := make([]dto.TransferInstructionResource, 0, len(instructions))
	for _, instruction := range instructions {
		resource := dto.TransferInstructionResource{
			Type:       string(instruction.Type),
			Recipient:  instruction.Recipient,
			Collection: instruction.Collection,
			ItemID:     instruction.ItemID,
		}
		if instruction.Type != entities.TransferItem {
			resource.Denom = instruction.Denom
			resource.ContractAddress = instruction.ContractAddress
			resource.Amount = valueobjects.FormatAmount(instruction.Amount)
		}
		resources = append(resources, resource)
	}

	return resources
}

// feeAssetDetails is the JSON form of a fee asset embedded in error details.
func feeAssetDetails(asset valueobjects.Asset) map[string]any {
	info := assetInfoResource(asset.Info)
	infoDetails := map[string]any{"kind": info.Kind}
	if info.Denom != "" {
		infoDetails["denom"] = info.Denom
	}
	if info.ContractAddress != "" {
		infoDetails["contract_address"] = info.ContractAddress
	}

	return map[string]any{
		"info":   infoDetails,
		"amount": valueobjects.FormatAmount(asset.Amount),
	}
}
