package controllers

import (
	"log"
	"net/http"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
)

// DepositsController receives the custody and token contracts' deposit
// notifications, the entry points that carry escrowed items and token funds
// into the market.
type DepositsController struct {
	itemUseCase  portsin.NotifyItemDepositUseCase
	tokenUseCase portsin.NotifyTokenDepositUseCase
	logger       *log.Logger
}

type itemDepositEnvelope struct {
	Collection string                 `json:"collection_address"`
	Sender     string                 `json:"sender"`
	ItemID     string                 `json:"item_id"`
	Payload    dto.ItemDepositPayload `json:"payload"`
	Block      dto.BlockInfoPayload   `json:"block"`
}

type tokenDepositEnvelope struct {
	ContractAddress string                  `json:"contract_address"`
	Sender          string                  `json:"sender"`
	Amount          string                  `json:"amount"`
	Payload         dto.TokenDepositPayload `json:"payload"`
	Block           dto.BlockInfoPayload    `json:"block"`
}

func NewDepositsController(
	itemUseCase portsin.NotifyItemDepositUseCase,
	tokenUseCase portsin.NotifyTokenDepositUseCase,
	logger *log.Logger,
) *DepositsController {
	return &DepositsController{
		itemUseCase:  itemUseCase,
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

func (c *DepositsController) NotifyItemDeposit(w http.ResponseWriter, r *http.Request) {
	var envelope itemDepositEnvelope
	if appErr := decodeBody(r.Body, &envelope); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.itemUseCase.Execute(r.Context(), dto.ItemDepositCommand{
		Collection: envelope.Collection,
		Sender:     envelope.Sender,
		ItemID:     envelope.ItemID,
		Payload:    envelope.Payload,
		Block:      envelope.Block,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/deposits/item method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (c *DepositsController) NotifyTokenDeposit(w http.ResponseWriter, r *http.Request) {
	var envelope tokenDepositEnvelope
	if appErr := decodeBody(r.Body, &envelope); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.tokenUseCase.Execute(r.Context(), dto.TokenDepositCommand{
		ContractAddress: envelope.ContractAddress,
		Sender:          envelope.Sender,
		Amount:          envelope.Amount,
		Payload:         envelope.Payload,
		Block:           envelope.Block,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/deposits/token method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
