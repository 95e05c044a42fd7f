package use_cases

import (
	"context"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/domain/entities"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type updateCollectionUseCase struct {
	configStore portsout.MarketConfigStore
	catalog     portsout.CollectionCatalog
}

func NewUpdateCollectionUseCase(
	configStore portsout.MarketConfigStore,
	catalog portsout.CollectionCatalog,
) portsin.UpdateCollectionUseCase {
	return &updateCollectionUseCase{configStore: configStore, catalog: catalog}
}

func (u *updateCollectionUseCase) Execute(ctx context.Context, command dto.UpdateCollectionCommand) (dto.MarketActionOutput, *apperrors.AppError) {
	if u.configStore == nil || u.catalog == nil {
		return dto.MarketActionOutput{}, apperrors.NewInternal(
			"collection_ports_missing",
			"market config store and collection catalog are required",
			nil,
		)
	}

	caller, appErr := valueobjects.NormalizeAddress("caller", command.Caller)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	collection, appErr := valueobjects.NormalizeAddress("collection_address", command.Collection)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	config, found, appErr := u.configStore.Get(ctx)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	if !found {
		return dto.MarketActionOutput{}, apperrors.NewMarketNotInitialized()
	}
	if caller != config.Owner {
		return dto.MarketActionOutput{}, apperrors.NewUnauthorized()
	}

	current, found, appErr := u.catalog.Get(ctx, collection)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	if !found {
		return dto.MarketActionOutput{}, apperrors.NewCollectionNotFound(collection)
	}

	supportedAssets := current.SupportedAssets
	if command.SupportedAssets != nil {
		supportedAssets, appErr = parseAssetInfos(*command.SupportedAssets)
		if appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
	}
	royalties := current.Royalties
	if command.Royalties != nil {
		royalties, appErr = parseRoyalties(*command.Royalties)
		if appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
	}

	updated, appErr := entities.NewCollectionInfo(collection, supportedAssets, royalties)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	if appErr := u.catalog.Update(ctx, updated); appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	return dto.MarketActionOutput{
		Action: "update_collection",
		Attributes: map[string]string{
			"collection_address": collection,
		},
		Instructions: []dto.TransferInstructionResource{},
	}, nil
}
