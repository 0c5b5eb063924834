package ports

import (
	"context"

	"flare-frequency-service/internal/ffd/core/domain"
)

type DatasetFilter struct {
	Instrument *string // optional
}

type DatasetReaderPort interface {
	ListDatasets(ctx context.Context, f DatasetFilter) ([]domain.Dataset, error)
}
