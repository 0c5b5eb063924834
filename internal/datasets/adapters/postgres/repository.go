package postgres

import (
	"context"

	"flare-frequency-service/internal/datasets/core/domain"
	"flare-frequency-service/internal/datasets/core/ports"

	"github.com/lib/pq"
)

type DatasetRepository struct {
	db DB
}

func NewDatasetRepository(db DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

var _ ports.DatasetRepositoryPort = (*DatasetRepository)(nil)

// SQL template
const insertDatasetSQL = `
INSERT INTO datasets (
    id,
    name,
    instrument,
    detection_limit,
    exposure_time,
    magnitudes,
    created_at,
    dedupe_key
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *DatasetRepository) InsertDataset(ctx context.Context, d *domain.Dataset) (bool, error) {

	var instrument any
	if d.Instrument == "" {
		instrument = nil
	} else {
		instrument = d.Instrument
	}

	res, err := r.db.ExecContext(ctx, insertDatasetSQL,
		d.ID,
		d.Name,
		instrument,
		d.DetectionLimit,
		d.ExposureTime,
		pq.Array(d.Magnitudes),
		d.CreatedAt,
		d.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}
