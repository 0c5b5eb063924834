package domain

// Dataset is the aggregation-side view of one observation campaign. Only
// the fields the frequency computation needs are carried; storage concerns
// (IDs, dedupe keys) live in the datasets module.
type Dataset struct {
	Name           string
	Instrument     string
	DetectionLimit float64
	ExposureTime   float64
	Magnitudes     []float64
}

// Count returns the number of detected events in this campaign.
func (d Dataset) Count() int {
	return len(d.Magnitudes)
}
