package controllers

import (
	"log"
	"net/http"
	"strconv"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type OrdersController struct {
	executeUseCase        portsin.ExecuteOrderUseCase
	executeAuctionUseCase portsin.ExecuteAuctionUseCase
	placeBidUseCase       portsin.PlaceBidUseCase
	cancelUseCase         portsin.CancelOrderUseCase
	getUseCase            portsin.GetOrderUseCase
	listUseCase           portsin.ListOrdersUseCase
	cancelFeeUseCase      portsin.GetCancelFeeUseCase
	logger                *log.Logger
}

type executeOrderPayload struct {
	Sender        string               `json:"sender"`
	AttachedFunds []dto.CoinPayload    `json:"attached_funds,omitempty"`
	Block         dto.BlockInfoPayload `json:"block"`
}

type executeAuctionPayload struct {
	Sender string               `json:"sender"`
	Block  dto.BlockInfoPayload `json:"block"`
}

type placeBidPayload struct {
	Sender        string               `json:"sender"`
	Bid           dto.AssetPayload     `json:"bid"`
	AttachedFunds []dto.CoinPayload    `json:"attached_funds,omitempty"`
	Block         dto.BlockInfoPayload `json:"block"`
}

type cancelOrderPayload struct {
	Sender        string               `json:"sender"`
	AttachedFunds []dto.CoinPayload    `json:"attached_funds,omitempty"`
	Block         dto.BlockInfoPayload `json:"block"`
}

func NewOrdersController(
	executeUseCase portsin.ExecuteOrderUseCase,
	executeAuctionUseCase portsin.ExecuteAuctionUseCase,
	placeBidUseCase portsin.PlaceBidUseCase,
	cancelUseCase portsin.CancelOrderUseCase,
	getUseCase portsin.GetOrderUseCase,
	listUseCase portsin.ListOrdersUseCase,
	cancelFeeUseCase portsin.GetCancelFeeUseCase,
	logger *log.Logger,
) *OrdersController {
	return &OrdersController{
		executeUseCase:        executeUseCase,
		executeAuctionUseCase: executeAuctionUseCase,
		placeBidUseCase:       placeBidUseCase,
		cancelUseCase:         cancelUseCase,
		getUseCase:            getUseCase,
		listUseCase:           listUseCase,
		cancelFeeUseCase:      cancelFeeUseCase,
		logger:                logger,
	}
}

func (c *OrdersController) ExecuteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, appErr := parseOrderID(r.PathValue("id"))
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	var payload executeOrderPayload
	if appErr := decodeBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.executeUseCase.Execute(r.Context(), dto.ExecuteOrderCommand{
		Caller:        payload.Sender,
		OrderID:       orderID,
		AttachedFunds: payload.AttachedFunds,
		Block:         payload.Block,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/orders/{id}/execute method=%s order_id=%d code=%s message=%s", r.Method, orderID, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (c *OrdersController) ExecuteAuction(w http.ResponseWriter, r *http.Request) {
	orderID, appErr := parseOrderID(r.PathValue("id"))
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	var payload executeAuctionPayload
	if appErr := decodeBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.executeAuctionUseCase.Execute(r.Context(), dto.ExecuteAuctionCommand{
		Caller:  payload.Sender,
		OrderID: orderID,
		Block:   payload.Block,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/orders/{id}/execute-auction method=%s order_id=%d code=%s message=%s", r.Method, orderID, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (c *OrdersController) PlaceBid(w http.ResponseWriter, r *http.Request) {
	orderID, appErr := parseOrderID(r.PathValue("id"))
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	var payload placeBidPayload
	if appErr := decodeBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.placeBidUseCase.Execute(r.Context(), dto.PlaceBidCommand{
		Caller:        payload.Sender,
		OrderID:       orderID,
		Bid:           payload.Bid,
		AttachedFunds: payload.AttachedFunds,
		Block:         payload.Block,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/orders/{id}/bids method=%s order_id=%d code=%s message=%s", r.Method, orderID, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (c *OrdersController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, appErr := parseOrderID(r.PathValue("id"))
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	var payload cancelOrderPayload
	if appErr := decodeBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.cancelUseCase.Execute(r.Context(), dto.CancelOrderCommand{
		Caller:        payload.Sender,
		OrderID:       orderID,
		AttachedFunds: payload.AttachedFunds,
		Block:         payload.Block,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/orders/{id}/cancel method=%s order_id=%d code=%s message=%s", r.Method, orderID, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (c *OrdersController) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, appErr := parseOrderID(r.PathValue("id"))
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	resource, appErr := c.getUseCase.Execute(r.Context(), dto.GetOrderQuery{OrderID: orderID})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/orders/{id} method=%s order_id=%d code=%s message=%s", r.Method, orderID, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, resource)
}

func (c *OrdersController) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := dto.ListOrdersQuery{
		Seller: r.URL.Query().Get("seller"),
	}

	if raw := r.URL.Query().Get("start_after"); raw != "" {
		startAfter, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeAppError(w, apperrors.NewValidation(
				"invalid_request",
				"start_after must be an unsigned integer",
				map[string]any{"start_after": raw},
			))
			return
		}
		query.StartAfter = &startAfter
	}

	limit, appErr := parsePageLimit(r.URL.Query().Get("limit"))
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}
	query.Limit = limit

	resource, appErr := c.listUseCase.Execute(r.Context(), query)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/orders method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, resource)
}

func (c *OrdersController) GetCancelFee(w http.ResponseWriter, r *http.Request) {
	orderID, appErr := parseOrderID(r.PathValue("id"))
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	resource, appErr := c.cancelFeeUseCase.Execute(r.Context(), dto.GetCancelFeeQuery{OrderID: orderID})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/orders/{id}/cancel-fee method=%s order_id=%d code=%s message=%s", r.Method, orderID, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, resource)
}

func parseOrderID(raw string) (uint64, *apperrors.AppError) {
	orderID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidation(
			"invalid_request",
			"order id must be an unsigned integer",
			map[string]any{"order_id": raw},
		)
	}

	return orderID, nil
}
