package domain

import "time"

// Dataset is one observational campaign: the minimum magnitude it could
// detect, the total time it was watching, and the magnitudes of the events
// it actually caught. A dataset with zero events and positive exposure time
// is valid and still constrains the combined distribution.
type Dataset struct {
	ID             string
	Name           string
	Instrument     string
	DetectionLimit float64
	ExposureTime   float64
	Magnitudes     []float64
	CreatedAt      time.Time
	DedupeKey      string
}

// Count returns the number of detected events in this campaign.
func (d *Dataset) Count() int {
	return len(d.Magnitudes)
}
