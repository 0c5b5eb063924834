package ports

import (
	"context"

	"flare-frequency-service/internal/datasets/core/domain"
)

type DatasetRepositoryPort interface {
	// InsertDataset:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> DB error
	InsertDataset(ctx context.Context, d *domain.Dataset) (created bool, err error)
}
