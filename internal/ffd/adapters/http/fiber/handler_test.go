package fiber_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	httpadapter "flare-frequency-service/internal/ffd/adapters/http/fiber"
	"flare-frequency-service/internal/ffd/core/domain"
	"flare-frequency-service/internal/ffd/core/ports"
	"flare-frequency-service/internal/ffd/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface that handler depends on.
type fakeGetDistributionUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetDistributionInput) (*domain.Distribution, error)
	lastInput usecase.GetDistributionInput
	called    bool
}

func (f *fakeGetDistributionUseCase) Execute(ctx context.Context, in usecase.GetDistributionInput) (*domain.Distribution, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

func (f *fakeGetDistributionUseCase) RenderDistribution(surface ports.PlotSurfacePort, dist *domain.Distribution, corrected bool, style ports.LineStyle) (ports.Line, error) {
	return surface.StepLine(dist.Magnitudes, dist.CumFreq(corrected), style)
}

func sampleDistribution(t *testing.T) *domain.Distribution {
	t.Helper()
	d, err := domain.NewDistribution([]domain.Dataset{
		{Name: "tess-s01", DetectionLimit: 1.0, ExposureTime: 100, Magnitudes: []float64{2.0, 5.0}},
		{Name: "kepler-q1", DetectionLimit: 3.0, ExposureTime: 50, Magnitudes: []float64{4.0}},
	})
	if err != nil {
		t.Fatalf("failed to build distribution: %v", err)
	}
	return d
}

func setupApp(t *testing.T, uc httpadapter.GetDistributionUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewDistributionHandler(uc)
	app.Get("/ffd", h.GetDistribution)
	app.Get("/ffd/plot", h.PlotDistribution)
	return app
}

// ------------------------------------------------------------
// SUCCESS: full response body
// ------------------------------------------------------------

func TestGetDistribution_Success(t *testing.T) {
	uc := &fakeGetDistributionUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDistributionInput) (*domain.Distribution, error) {
			if in.Instrument != nil {
				t.Fatalf("expected no instrument filter, got %v", *in.Instrument)
			}
			return sampleDistribution(t), nil
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/ffd", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	var out httpadapter.DistributionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid response: %v", err)
	}

	if out.TotalCount != 3 || out.TotalExposure != 150 {
		t.Fatalf("unexpected totals: %+v", out)
	}
	if out.DatasetCount != 2 {
		t.Fatalf("expected 2 datasets, got %d", out.DatasetCount)
	}
	if len(out.Magnitudes) != 3 || len(out.NaiveCumFreq) != 3 || len(out.CorrectedCumFreq) != 3 {
		t.Fatalf("expected parallel arrays of length 3: %+v", out)
	}
	if out.Magnitudes[0] != 2.0 || out.Magnitudes[2] != 5.0 {
		t.Fatalf("unexpected magnitudes: %v", out.Magnitudes)
	}
	if out.Summary.Min != 2.0 || out.Summary.Max != 5.0 {
		t.Fatalf("unexpected summary: %+v", out.Summary)
	}
	if !uc.called {
		t.Fatalf("expected usecase to be called")
	}
}

// ------------------------------------------------------------
// SUCCESS: instrument filter forwarded
// ------------------------------------------------------------

func TestGetDistribution_InstrumentFilter(t *testing.T) {
	uc := &fakeGetDistributionUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDistributionInput) (*domain.Distribution, error) {
			if in.Instrument == nil || *in.Instrument != "tess" {
				t.Fatalf("expected instrument=tess, got %v", in.Instrument)
			}
			return sampleDistribution(t), nil
		},
	}

	app := setupApp(t, uc)

	params := url.Values{}
	params.Set("instrument", "tess")

	req := httptest.NewRequest(http.MethodGet, "/ffd?"+params.Encode(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// DOMAIN ERRORS -> 422
// ------------------------------------------------------------

func TestGetDistribution_NoDatasets(t *testing.T) {
	uc := &fakeGetDistributionUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDistributionInput) (*domain.Distribution, error) {
			return nil, domain.ErrNoDatasets
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/ffd", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var out httpadapter.ErrorResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if out.Error != "invalid_datasets" {
		t.Fatalf("expected invalid_datasets, got %s", out.Error)
	}
}

func TestGetDistribution_ZeroExposure(t *testing.T) {
	uc := &fakeGetDistributionUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDistributionInput) (*domain.Distribution, error) {
			return nil, domain.ErrZeroExposure
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/ffd", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// UNKNOWN ERROR -> 500
// ------------------------------------------------------------

func TestGetDistribution_InternalError(t *testing.T) {
	uc := &fakeGetDistributionUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDistributionInput) (*domain.Distribution, error) {
			return nil, io.ErrUnexpectedEOF
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/ffd", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// PLOT: returns an SVG document
// ------------------------------------------------------------

func TestPlotDistribution_SVG(t *testing.T) {
	uc := &fakeGetDistributionUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDistributionInput) (*domain.Distribution, error) {
			return sampleDistribution(t), nil
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/ffd/plot?corrected=true", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("expected image/svg+xml, got %s", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	if !strings.Contains(string(body), "<svg") {
		t.Fatalf("expected an SVG document, got: %.80s", body)
	}
}

// ------------------------------------------------------------
// PLOT: nothing to draw -> 422
// ------------------------------------------------------------

func TestPlotDistribution_NoEvents(t *testing.T) {
	uc := &fakeGetDistributionUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDistributionInput) (*domain.Distribution, error) {
			return domain.NewDistribution([]domain.Dataset{
				{Name: "quiet", DetectionLimit: 1.0, ExposureTime: 100, Magnitudes: []float64{}},
			})
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/ffd/plot", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// PLOT: domain errors map like the JSON endpoint
// ------------------------------------------------------------

func TestPlotDistribution_NoDatasets(t *testing.T) {
	uc := &fakeGetDistributionUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDistributionInput) (*domain.Distribution, error) {
			return nil, domain.ErrNoDatasets
		},
	}

	app := setupApp(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/ffd/plot", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.StatusCode)
	}
}
