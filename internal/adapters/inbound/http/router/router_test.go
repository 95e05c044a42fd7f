//go:build !integration

package router

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nftmarket/internal/adapters/inbound/http/controllers"
	"nftmarket/internal/application/dto"
	"nftmarket/internal/application/use_cases"
	apperrors "nftmarket/internal/shared_kernel/errors"
)

type stubUpdateMarketConfigUseCase struct {
	called bool
}

func (s *stubUpdateMarketConfigUseCase) Execute(_ context.Context, _ dto.UpdateMarketConfigCommand) (dto.MarketActionOutput, *apperrors.AppError) {
	s.called = true
	return dto.MarketActionOutput{Action: "update_config"}, nil
}

type stubSetupMarketUseCase struct{}

func (s *stubSetupMarketUseCase) Execute(_ context.Context, _ dto.SetupMarketCommand) (dto.MarketActionOutput, *apperrors.AppError) {
	return dto.MarketActionOutput{Action: "setup"}, nil
}

type stubGetMarketConfigUseCase struct{}

func (s *stubGetMarketConfigUseCase) Execute(_ context.Context, _ dto.GetMarketConfigQuery) (dto.MarketConfigResource, *apperrors.AppError) {
	return dto.MarketConfigResource{Owner: "0xab"}, nil
}

func newTestRouter(update *stubUpdateMarketConfigUseCase, adminKey string) *http.ServeMux {
	logger := log.New(io.Discard, "", 0)

	return New(Dependencies{
		HealthController: controllers.NewHealthController(use_cases.NewGetHealthUseCase(), logger),
		MarketController: controllers.NewMarketController(
			&stubSetupMarketUseCase{},
			update,
			&stubGetMarketConfigUseCase{},
			logger,
		),
		AdminAPIKey: adminKey,
	})
}

func TestRouterHealthRoute(t *testing.T) {
	mux := newTestRouter(&stubUpdateMarketConfigUseCase{}, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"healthy"`) {
		t.Fatalf("expected healthy status, got %s", rec.Body.String())
	}
}

func TestRouterAdminGateRejectsMissingKey(t *testing.T) {
	update := &stubUpdateMarketConfigUseCase{}
	mux := newTestRouter(update, "top-secret")

	req := httptest.NewRequest(http.MethodPatch, "/v1/config", strings.NewReader(`{"caller":"0xab"}`))
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
	if update.called {
		t.Fatal("expected use case not to be called")
	}
}

func TestRouterAdminGateAcceptsConfiguredKey(t *testing.T) {
	update := &stubUpdateMarketConfigUseCase{}
	mux := newTestRouter(update, "top-secret")

	req := httptest.NewRequest(http.MethodPatch, "/v1/config", strings.NewReader(`{"caller":"0xab"}`))
	req.Header.Set("X-Admin-API-Key", "top-secret")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !update.called {
		t.Fatal("expected use case to be called")
	}
}

func TestRouterGetConfigIsNotGated(t *testing.T) {
	mux := newTestRouter(&stubUpdateMarketConfigUseCase{}, "top-secret")

	req := httptest.NewRequest(http.MethodGet, "/v1/config", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
