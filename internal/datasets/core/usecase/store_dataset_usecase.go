package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"flare-frequency-service/internal/datasets/core/domain"
	"flare-frequency-service/internal/datasets/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidDataset      = errors.New("invalid dataset")
	ErrNegativeExposure    = errors.New("exposure time cannot be negative")
	ErrNonFiniteMagnitudes = errors.New("magnitudes must be finite numbers")
)

type StoreDatasetUseCase struct {
	repo ports.DatasetRepositoryPort
}

func NewStoreDatasetUseCase(repo ports.DatasetRepositoryPort) *StoreDatasetUseCase {
	return &StoreDatasetUseCase{repo: repo}
}

type StoreDatasetInput struct {
	Name           string
	Instrument     string
	DetectionLimit float64
	ExposureTime   float64
	Magnitudes     []float64
}

func (uc *StoreDatasetUseCase) Execute(ctx context.Context, in StoreDatasetInput) (bool, error) {

	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	if in.Magnitudes == nil {
		in.Magnitudes = []float64{}
	}

	d := &domain.Dataset{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Instrument:     in.Instrument,
		DetectionLimit: in.DetectionLimit,
		ExposureTime:   in.ExposureTime,
		Magnitudes:     in.Magnitudes,
		CreatedAt:      time.Now().UTC(),
		DedupeKey:      buildDedupeKey(in),
	}

	created, err := uc.repo.InsertDataset(ctx, d)
	if err != nil {
		return false, err
	}

	return created, nil
}

func buildDedupeKey(in StoreDatasetInput) string {
	// name + instrument identifies a campaign; re-posting the same
	// campaign must not double its exposure time in the aggregate.
	return fmt.Sprintf("%s|%s", in.Name, in.Instrument)
}

type BulkStoreDatasetsInput struct {
	Datasets []StoreDatasetInput
}

type BulkStoreDatasetsResult struct {
	Created    int
	Duplicates int
}

func (uc *StoreDatasetUseCase) BulkStoreDatasets(ctx context.Context, in BulkStoreDatasetsInput) (BulkStoreDatasetsResult, error) {
	var res BulkStoreDatasetsResult

	for _, d := range in.Datasets {
		if err := uc.validateInput(d); err != nil {
			return res, err
		}
	}

	for _, d := range in.Datasets {
		ok, err := uc.Execute(ctx, d)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreDatasetUseCase) validateInput(in StoreDatasetInput) error {

	if in.Name == "" {
		return ErrInvalidDataset
	}

	if in.ExposureTime < 0 {
		return ErrNegativeExposure
	}

	for _, m := range in.Magnitudes {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return ErrNonFiniteMagnitudes
		}
	}

	return nil
}
