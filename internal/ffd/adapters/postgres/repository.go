package postgres

import (
	"context"

	"flare-frequency-service/internal/ffd/core/domain"
	"flare-frequency-service/internal/ffd/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type DatasetReader struct {
	db DB
}

func NewDatasetReader(db DB) *DatasetReader {
	return &DatasetReader{db: db}
}

var _ ports.DatasetReaderPort = (*DatasetReader)(nil)

const listDatasetsSQL = `
SELECT
    name,
    COALESCE(instrument, ''),
    detection_limit,
    exposure_time,
    magnitudes
FROM datasets
`

func (r *DatasetReader) ListDatasets(ctx context.Context, f ports.DatasetFilter) ([]domain.Dataset, error) {
	query := listDatasetsSQL
	var args []any

	if f.Instrument != nil {
		query += "WHERE instrument = $1\n"
		args = append(args, *f.Instrument)
	}
	query += "ORDER BY detection_limit, name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []domain.Dataset

	for rows.Next() {
		var d domain.Dataset
		var magnitudes pq.Float64Array

		if err := rows.Scan(&d.Name, &d.Instrument, &d.DetectionLimit, &d.ExposureTime, &magnitudes); err != nil {
			return nil, err
		}

		d.Magnitudes = []float64(magnitudes)
		if d.Magnitudes == nil {
			d.Magnitudes = []float64{}
		}
		datasets = append(datasets, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return datasets, nil
}
