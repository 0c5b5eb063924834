package fiber

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"flare-frequency-service/internal/ffd/adapters/plot"
	"flare-frequency-service/internal/ffd/core/domain"
	"flare-frequency-service/internal/ffd/core/ports"
	"flare-frequency-service/internal/ffd/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetDistributionUseCase interface {
	Execute(ctx context.Context, in usecase.GetDistributionInput) (*domain.Distribution, error)
	RenderDistribution(surface ports.PlotSurfacePort, dist *domain.Distribution, corrected bool, style ports.LineStyle) (ports.Line, error)
}

type DistributionHandler struct {
	uc GetDistributionUseCase
}

func NewDistributionHandler(uc GetDistributionUseCase) *DistributionHandler {
	return &DistributionHandler{uc: uc}
}

// GetDistribution godoc
// @Summary Combined flare frequency distribution
// @Description Merges all stored campaigns into one sorted event list and returns the naive and detection-limit-corrected cumulative frequency curves
// @Tags Distribution
// @Accept json
// @Produce json
// @Param instrument query string false "Restrict to campaigns from one instrument"
// @Success 200 {object} DistributionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ffd [get]
func (h *DistributionHandler) GetDistribution(c *fiber.Ctx) error {
	in := parseQuery(c)

	dist, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return mapDistributionError(c, err)
	}

	s := dist.Summarize()

	resp := DistributionResponse{
		DatasetCount:       len(dist.Datasets),
		TotalCount:         dist.TotalCount,
		TotalExposure:      dist.TotalExposure,
		Magnitudes:         dist.Magnitudes,
		DetectableExposure: dist.DetectableExposure,
		NaiveCumFreq:       dist.NaiveCumFreq,
		CorrectedCumFreq:   dist.CorrectedCumFreq,
		Summary: SummaryResponse{
			Mean:   s.Mean,
			StdDev: s.StdDev,
			Min:    s.Min,
			Max:    s.Max,
			Median: s.Median,
			Q25:    s.Q25,
			Q75:    s.Q75,
		},
	}
	if in.Instrument != nil {
		resp.Instrument = *in.Instrument
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// PlotDistribution godoc
// @Summary Render the distribution as an SVG step plot
// @Description Draws the chosen cumulative frequency curve as a right-continuous step line on log-log axes
// @Tags Distribution
// @Produce image/svg+xml
// @Param instrument query string false "Restrict to campaigns from one instrument"
// @Param corrected query bool false "Plot the corrected curve (default true)"
// @Param title query string false "Plot title"
// @Param label query string false "Legend label for the curve"
// @Success 200 {string} string "SVG document"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ffd/plot [get]
func (h *DistributionHandler) PlotDistribution(c *fiber.Ctx) error {
	in := parseQuery(c)

	corrected := c.QueryBool("corrected", true)

	dist, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return mapDistributionError(c, err)
	}

	if dist.TotalCount == 0 {
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "no_events",
			Message: "no events to plot",
		})
	}

	surface := plot.NewSurface(plot.SurfaceOptions{
		Title:  c.Query("title", "Flare frequency distribution"),
		XLabel: "magnitude",
		YLabel: "cumulative frequency",
		LogLog: c.QueryBool("log", true),
	})

	style := ports.LineStyle{
		Label: c.Query("label", ""),
		Width: c.QueryFloat("width", 0),
		Color: c.Query("color", ""),
	}

	if _, err := h.uc.RenderDistribution(surface, dist, corrected, style); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "plot_failed",
			Message: err.Error(),
		})
	}

	var buf bytes.Buffer
	if err := surface.WriteSVG(&buf); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "plot_failed",
			Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func parseQuery(c *fiber.Ctx) usecase.GetDistributionInput {
	var in usecase.GetDistributionInput

	instrument := c.Query("instrument", "")
	if instrument != "" {
		in.Instrument = &instrument
	}

	return in
}

func mapDistributionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuery):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNoDatasets),
		errors.Is(err, domain.ErrZeroExposure),
		errors.Is(err, domain.ErrUndetectableMagnitude),
		errors.Is(err, domain.ErrZeroDetectableExposure):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "invalid_datasets",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
