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

type updateMarketConfigUseCase struct {
	configStore portsout.MarketConfigStore
}

func NewUpdateMarketConfigUseCase(configStore portsout.MarketConfigStore) portsin.UpdateMarketConfigUseCase {
	return &updateMarketConfigUseCase{configStore: configStore}
}

func (u *updateMarketConfigUseCase) Execute(ctx context.Context, command dto.UpdateMarketConfigCommand) (dto.MarketActionOutput, *apperrors.AppError) {
	if u.configStore == nil {
		return dto.MarketActionOutput{}, apperrors.NewInternal(
			"market_config_store_missing",
			"market config store is required",
			nil,
		)
	}

	caller, appErr := valueobjects.NormalizeAddress("caller", command.Caller)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	current, found, appErr := u.configStore.Get(ctx)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	if !found {
		return dto.MarketActionOutput{}, apperrors.NewMarketNotInitialized()
	}
	if caller != current.Owner {
		return dto.MarketActionOutput{}, apperrors.NewUnauthorized()
	}

	owner := current.Owner
	if command.Owner != nil {
		owner, appErr = valueobjects.NormalizeAddress("owner", *command.Owner)
		if appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
	}
	minIncrease := current.MinIncrease
	if command.MinIncrease != nil {
		minIncrease, appErr = valueobjects.ParseRate(*command.MinIncrease)
		if appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
	}
	maxBlocks := current.MaxAuctionDurationBlocks
	if command.MaxAuctionDurationBlocks != nil {
		maxBlocks = *command.MaxAuctionDurationBlocks
	}
	maxSeconds := current.MaxAuctionDurationSeconds
	if command.MaxAuctionDurationSeconds != nil {
		maxSeconds = *command.MaxAuctionDurationSeconds
	}
	cancelFeeRate := current.CancelFeeRate
	if command.CancelFeeRate != nil {
		cancelFeeRate, appErr = valueobjects.ParseRate(*command.CancelFeeRate)
		if appErr != nil {
			return dto.MarketActionOutput{}, appErr
		}
	}

	updated, appErr := entities.NewMarketConfig(owner, minIncrease, maxBlocks, maxSeconds, cancelFeeRate)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	if appErr := u.configStore.Update(ctx, updated); appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	return dto.MarketActionOutput{
		Action: "update_config",
		Attributes: map[string]string{
			"owner": updated.Owner,
		},
		Instructions: []dto.TransferInstructionResource{},
	}, nil
}
