package controllers

import (
	"log"
	"net/http"
	"strconv"

	"nftmarket/internal/application/dto"
	portsin "nftmarket/internal/application/ports/in"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type CollectionsController struct {
	addUseCase    portsin.AddCollectionUseCase
	updateUseCase portsin.UpdateCollectionUseCase
	getUseCase    portsin.GetCollectionUseCase
	listUseCase   portsin.ListCollectionsUseCase
	logger        *log.Logger
}

type addCollectionPayload struct {
	Caller          string                 `json:"caller"`
	Collection      string                 `json:"collection_address"`
	SupportedAssets []dto.AssetInfoPayload `json:"supported_assets"`
	Royalties       []dto.RoyaltyPayload   `json:"royalties,omitempty"`
}

type updateCollectionPayload struct {
	Caller          string                  `json:"caller"`
	SupportedAssets *[]dto.AssetInfoPayload `json:"supported_assets,omitempty"`
	Royalties       *[]dto.RoyaltyPayload   `json:"royalties,omitempty"`
}

func NewCollectionsController(
	addUseCase portsin.AddCollectionUseCase,
	updateUseCase portsin.UpdateCollectionUseCase,
	getUseCase portsin.GetCollectionUseCase,
	listUseCase portsin.ListCollectionsUseCase,
	logger *log.Logger,
) *CollectionsController {
	return &CollectionsController{
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		logger:        logger,
	}
}

func (c *CollectionsController) AddCollection(w http.ResponseWriter, r *http.Request) {
	var payload addCollectionPayload
	if appErr := decodeBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.addUseCase.Execute(r.Context(), dto.AddCollectionCommand{
		Caller:          payload.Caller,
		Collection:      payload.Collection,
		SupportedAssets: payload.SupportedAssets,
		Royalties:       payload.Royalties,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/collections method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (c *CollectionsController) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	var payload updateCollectionPayload
	if appErr := decodeBody(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.updateUseCase.Execute(r.Context(), dto.UpdateCollectionCommand{
		Caller:          payload.Caller,
		Collection:      r.PathValue("address"),
		SupportedAssets: payload.SupportedAssets,
		Royalties:       payload.Royalties,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/collections/{address} method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (c *CollectionsController) GetCollection(w http.ResponseWriter, r *http.Request) {
	resource, appErr := c.getUseCase.Execute(r.Context(), dto.GetCollectionQuery{
		Collection: r.PathValue("address"),
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/collections/{address} method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, resource)
}

func (c *CollectionsController) ListCollections(w http.ResponseWriter, r *http.Request) {
	query := dto.ListCollectionsQuery{
		StartAfter: r.URL.Query().Get("start_after"),
	}

	limit, appErr := parsePageLimit(r.URL.Query().Get("limit"))
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}
	query.Limit = limit

	resource, appErr := c.listUseCase.Execute(r.Context(), query)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/collections method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, resource)
}

func parsePageLimit(raw string) (*uint32, *apperrors.AppError) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, apperrors.NewValidation(
			"invalid_request",
			"limit must be an unsigned integer",
			map[string]any{"limit": raw},
		)
	}

	limit := uint32(parsed)
	return &limit, nil
}
