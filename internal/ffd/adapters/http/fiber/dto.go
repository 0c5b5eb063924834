package fiber

type SummaryResponse struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

type DistributionResponse struct {
	Instrument    string  `json:"instrument,omitempty"`
	DatasetCount  int     `json:"dataset_count"`
	TotalCount    int     `json:"total_count"`
	TotalExposure float64 `json:"total_exposure"`

	Magnitudes         []float64 `json:"magnitudes"`
	DetectableExposure []float64 `json:"detectable_exposure"`
	NaiveCumFreq       []float64 `json:"naive_cumfreq"`
	CorrectedCumFreq   []float64 `json:"corrected_cumfreq"`

	Summary SummaryResponse `json:"summary"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_datasets"`
	Message string `json:"message" example:"combined exposure time is zero"`
}
