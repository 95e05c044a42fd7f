package use_cases

import (
	"context"
	"strconv"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	portsout "nftmarket/internal/application/ports/out"
	"nftmarket/internal/domain/entities"
	valueobjects "nftmarket/internal/domain/value_objects"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type setupMarketUseCase struct {
	configStore portsout.MarketConfigStore
}

func NewSetupMarketUseCase(configStore portsout.MarketConfigStore) portsin.SetupMarketUseCase {
	return &setupMarketUseCase{configStore: configStore}
}

func (u *setupMarketUseCase) Execute(ctx context.Context, command dto.SetupMarketCommand) (dto.MarketActionOutput, *apperrors.AppError) {
	if u.configStore == nil {
		return dto.MarketActionOutput{}, apperrors.NewInternal(
			"market_config_store_missing",
			"market config store is required",
			nil,
		)
	}

	owner, appErr := valueobjects.NormalizeAddress("owner", command.Owner)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	minIncrease, appErr := valueobjects.ParseRate(command.MinIncrease)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}
	cancelFeeRate, appErr := valueobjects.ParseRate(command.CancelFeeRate)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	config, appErr := entities.NewMarketConfig(
		owner,
		minIncrease,
		command.MaxAuctionDurationBlocks,
		command.MaxAuctionDurationSeconds,
		cancelFeeRate,
	)
	if appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	if appErr := u.configStore.Initialize(ctx, config); appErr != nil {
		return dto.MarketActionOutput{}, appErr
	}

	return dto.MarketActionOutput{
		Action: "setup",
		Attributes: map[string]string{
			"owner":                        owner,
			"min_increase":                 minIncrease.String(),
			"max_auction_duration_blocks":  strconv.FormatUint(command.MaxAuctionDurationBlocks, 10),
			"max_auction_duration_seconds": strconv.FormatUint(command.MaxAuctionDurationSeconds, 10),
			"cancel_fee_rate":              cancelFeeRate.String(),
		},
		Instructions: []dto.TransferInstructionResource{},
	}, nil
}
