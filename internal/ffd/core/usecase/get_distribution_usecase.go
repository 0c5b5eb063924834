package usecase

import (
	"context"
	"errors"

	"flare-frequency-service/internal/ffd/core/domain"
	"flare-frequency-service/internal/ffd/core/ports"
)

var ErrInvalidQuery = errors.New("invalid distribution query")

type GetDistributionInput struct {
	Instrument *string // optional campaign filter
}

type GetDistributionUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetDistributionUseCase(reader ports.DatasetReaderPort) *GetDistributionUseCase {
	return &GetDistributionUseCase{reader: reader}
}

// Execute loads the matching campaigns and builds the combined frequency
// distribution. Domain errors from construction (empty input, zero
// exposure, uncovered magnitudes) pass through for the caller to map.
func (uc *GetDistributionUseCase) Execute(ctx context.Context, in GetDistributionInput) (*domain.Distribution, error) {

	if in.Instrument != nil && *in.Instrument == "" {
		return nil, ErrInvalidQuery
	}

	filter := ports.DatasetFilter{
		Instrument: in.Instrument,
	}

	datasets, err := uc.reader.ListDatasets(ctx, filter)
	if err != nil {
		return nil, err
	}

	return domain.NewDistribution(datasets)
}

type RenderDistributionInput struct {
	Instrument *string
	Corrected  bool
	Style      ports.LineStyle
}

// Render draws the chosen cumulative frequency curve as a post-step line on
// the given surface and returns the surface's line handle. It is a thin
// adapter over the plotting collaborator and adds no failure mode of its
// own.
func (uc *GetDistributionUseCase) Render(ctx context.Context, surface ports.PlotSurfacePort, in RenderDistributionInput) (ports.Line, error) {

	dist, err := uc.Execute(ctx, GetDistributionInput{Instrument: in.Instrument})
	if err != nil {
		return nil, err
	}

	return uc.RenderDistribution(surface, dist, in.Corrected, in.Style)
}

// RenderDistribution draws an already computed distribution. Split out so
// callers that hold a Distribution do not reload the datasets.
func (uc *GetDistributionUseCase) RenderDistribution(surface ports.PlotSurfacePort, dist *domain.Distribution, corrected bool, style ports.LineStyle) (ports.Line, error) {
	return surface.StepLine(dist.Magnitudes, dist.CumFreq(corrected), style)
}
