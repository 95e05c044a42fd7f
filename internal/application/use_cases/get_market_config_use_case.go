package use_cases

import (
	"context"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type getMarketConfigUseCase struct {
	configStore portsout.MarketConfigStore
}

func NewGetMarketConfigUseCase(configStore portsout.MarketConfigStore) portsin.GetMarketConfigUseCase {
	return &getMarketConfigUseCase{configStore: configStore}
}

func (u *getMarketConfigUseCase) Execute(ctx context.Context, _ dto.GetMarketConfigQuery) (dto.MarketConfigResource, *apperrors.AppError) {
	if u.configStore == nil {
		return dto.MarketConfigResource{}, apperrors.NewInternal(
			"market_config_store_missing",
			"market config store is required",
			nil,
		)
	}

	config, found, appErr := u.configStore.Get(ctx)
	if appErr != nil {
		return dto.MarketConfigResource{}, appErr
	}
	if !found {
		return dto.MarketConfigResource{}, apperrors.NewMarketNotInitialized()
	}

	return marketConfigResource(config), nil
}
