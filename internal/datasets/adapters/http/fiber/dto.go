package fiber

// CreateDatasetRequest represents dataset creation payload
// @Description Observation campaign creation DTO
type CreateDatasetRequest struct {
	Name           string    `json:"name"`
	Instrument     string    `json:"instrument"`
	DetectionLimit float64   `json:"detection_limit"`
	ExposureTime   float64   `json:"exposure_time"`
	Magnitudes     []float64 `json:"magnitudes"`
}

type CreateDatasetResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateDatasetsRequest struct {
	Datasets []bulkDatasetItem `json:"datasets"`
}

type bulkDatasetItem struct {
	Name           string    `json:"name"`
	Instrument     string    `json:"instrument"`
	DetectionLimit float64   `json:"detection_limit"`
	ExposureTime   float64   `json:"exposure_time"`
	Magnitudes     []float64 `json:"magnitudes"`
}

type BulkCreateDatasetsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_dataset"`
	Message string `json:"message" example:"Dataset payload is invalid"`
}
