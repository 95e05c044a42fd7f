package router

import (
	"net/http"

	"nftmarket/internal/adapters/inbound/http/controllers"
)

type Dependencies struct {
	HealthController      *controllers.HealthController
	SwaggerController     *controllers.SwaggerController
	MarketController      *controllers.MarketController
	CollectionsController *controllers.CollectionsController
	DepositsController    *controllers.DepositsController
	OrdersController      *controllers.OrdersController
	EventStreamHandler    http.HandlerFunc

	// AdminAPIKey gates the owner/admin surface. Empty disables the gate,
	// which is only sensible for local development.
	AdminAPIKey string
}

func New(deps Dependencies) *http.ServeMux {
	mux := http.NewServeMux()
	admin := adminKeyGate(deps.AdminAPIKey)

	mux.HandleFunc("GET /healthz", deps.HealthController.GetHealth)
	mux.HandleFunc("GET /swagger", deps.SwaggerController.RedirectToIndex)
	mux.HandleFunc("GET /swagger/openapi.yaml", deps.SwaggerController.GetOpenAPISpec)
	mux.HandleFunc("GET /swagger/", deps.SwaggerController.ServeUI)

	mux.HandleFunc("POST /v1/market", admin(deps.MarketController.SetupMarket))
	mux.HandleFunc("GET /v1/config", deps.MarketController.GetConfig)
	mux.HandleFunc("PATCH /v1/config", admin(deps.MarketController.UpdateConfig))

	mux.HandleFunc("POST /v1/collections", admin(deps.CollectionsController.AddCollection))
	mux.HandleFunc("GET /v1/collections", deps.CollectionsController.ListCollections)
	mux.HandleFunc("GET /v1/collections/{address}", deps.CollectionsController.GetCollection)
	mux.HandleFunc("PATCH /v1/collections/{address}", admin(deps.CollectionsController.UpdateCollection))

	mux.HandleFunc("POST /v1/deposits/item", deps.DepositsController.NotifyItemDeposit)
	mux.HandleFunc("POST /v1/deposits/token", deps.DepositsController.NotifyTokenDeposit)

	mux.HandleFunc("GET /v1/orders", deps.OrdersController.ListOrders)
	mux.HandleFunc("GET /v1/orders/{id}", deps.OrdersController.GetOrder)
	mux.HandleFunc("GET /v1/orders/{id}/cancel-fee", deps.OrdersController.GetCancelFee)
	mux.HandleFunc("POST /v1/orders/{id}/execute", deps.OrdersController.ExecuteOrder)
	mux.HandleFunc("POST /v1/orders/{id}/execute-auction", deps.OrdersController.ExecuteAuction)
	mux.HandleFunc("POST /v1/orders/{id}/bids", deps.OrdersController.PlaceBid)
	mux.HandleFunc("POST /v1/orders/{id}/cancel", deps.OrdersController.CancelOrder)

	if deps.EventStreamHandler != nil {
		mux.HandleFunc("GET /v1/events", deps.EventStreamHandler)
	}

	return mux
}
