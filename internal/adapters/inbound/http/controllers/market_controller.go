package controllers

import (
	"log"
	"net/http"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
)

type MarketController struct {
	setupUseCase  portsin.SetupMarketUseCase
	updateUseCase portsin.UpdateMarketConfigUseCase
	getUseCase    portsin.GetMarketConfigUseCase
	logger        *log.Logger
}

type setupMarketPayload struct {
	Owner                     string `json:"owner"`
	MinIncrease               string `json:"min_increase"`
	MaxAuctionDurationBlocks  uint64 `json:"max_auction_duration_blocks"`
	MaxAuctionDurationSeconds uint64 `json:"max_auction_duration_seconds"`
	CancelFeeRate             string `json:"cancel_fee_rate"`
}

type updateMarketConfigPayload struct {
	Caller                    string  `json:"caller"`
	Owner                     *string `json:"owner,omitempty"`
	MinIncrease               *string `json:"min_increase,omitempty"`
	MaxAuctionDurationBlocks  *uint64 `json:"max_auction_duration_blocks,omitempty"`
	MaxAuctionDurationSeconds *uint64 `json:"max_auction_duration_seconds,omitempty"`
	CancelFeeRate             *string `json:"cancel_fee_rate,omitempty"`
}

func NewMarketController(
	setupUseCase portsin.SetupMarketUseCase,
	updateUseCase portsin.UpdateMarketConfigUseCase,
	getUseCase portsin.GetMarketConfigUseCase,
	logger *log.Logger,
) *MarketController {
	return &MarketController{
		setupUseCase:  setupUseCase,
		updateUseCase: updateUseCase,
		getUseCase:    getUseCase,
		logger:        logger,
	}
}

func (c *MarketController) SetupMarket(w http.ResponseWriter, r *http.Request) {
	var payload setupMarketPayload
	if appErr := decodeBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.setupUseCase.Execute(r.Context(), dto.SetupMarketCommand{
		Owner:                     payload.Owner,
		MinIncrease:               payload.MinIncrease,
		MaxAuctionDurationBlocks:  payload.MaxAuctionDurationBlocks,
		MaxAuctionDurationSeconds: payload.MaxAuctionDurationSeconds,
		CancelFeeRate:             payload.CancelFeeRate,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/market method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (c *MarketController) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var payload updateMarketConfigPayload
	if appErr := decodeBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.updateUseCase.Execute(r.Context(), dto.UpdateMarketConfigCommand{
		Caller:                    payload.Caller,
		Owner:                     payload.Owner,
		MinIncrease:               payload.MinIncrease,
		MaxAuctionDurationBlocks:  payload.MaxAuctionDurationBlocks,
		MaxAuctionDurationSeconds: payload.MaxAuctionDurationSeconds,
		CancelFeeRate:             payload.CancelFeeRate,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/config method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (c *MarketController) GetConfig(w http.ResponseWriter, r *http.Request) {
	resource, appErr := c.getUseCase.Execute(r.Context(), dto.GetMarketConfigQuery{})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/config method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, resource)
}
