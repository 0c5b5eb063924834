package fiber

import (
	"context"
	"errors"
	"net/http"

	"flare-frequency-service/internal/datasets/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreDatasetUseCase interface {
	Execute(ctx context.Context, in usecase.StoreDatasetInput) (bool, error)
	BulkStoreDatasets(ctx context.Context, in usecase.BulkStoreDatasetsInput) (usecase.BulkStoreDatasetsResult, error)
}

type DatasetHandler struct {
	storeUC StoreDatasetUseCase
}

func NewDatasetHandler(storeUC StoreDatasetUseCase) *DatasetHandler {
	return &DatasetHandler{storeUC: storeUC}
}

// CreateDataset godoc
// @Summary Register an observation campaign
// @Description Stores a campaign's detection limit, exposure time and detected event magnitudes, with idempotency handling
// @Tags Datasets
// @Accept json
// @Produce json
// @Param request body CreateDatasetRequest true "Dataset payload"
// @Success 201 {object} CreateDatasetResponse
// @Success 200 {object} CreateDatasetResponse "Duplicate dataset"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets [post]
func (h *DatasetHandler) CreateDataset(c *fiber.Ctx) error {
	var req CreateDatasetRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.StoreDatasetInput{
		Name:           req.Name,
		Instrument:     req.Instrument,
		DetectionLimit: req.DetectionLimit,
		ExposureTime:   req.ExposureTime,
		Magnitudes:     req.Magnitudes,
	}

	created, err := h.storeUC.Execute(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDataset),
			errors.Is(err, usecase.ErrNegativeExposure),
			errors.Is(err, usecase.ErrNonFiniteMagnitudes):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_dataset",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	if !created {
		resp := CreateDatasetResponse{
			Status: "duplicate",
		}
		return c.Status(http.StatusOK).JSON(resp)
	}

	resp := CreateDatasetResponse{
		Status: "created",
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// BulkCreateDatasets godoc
// @Summary Bulk register observation campaigns
// @Description Accepts a list of campaigns and stores them individually
// @Tags Datasets
// @Accept json
// @Produce json
// @Param request body BulkCreateDatasetsRequest true "Bulk dataset payload"
// @Success 201 {object} BulkCreateDatasetsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/bulk [post]
func (h *DatasetHandler) BulkCreateDatasets(c *fiber.Ctx) error {
	var req BulkCreateDatasetsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Datasets) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "datasets_list_required",
		})
	}

	inputs := make([]usecase.StoreDatasetInput, len(req.Datasets))
	for i, d := range req.Datasets {
		inputs[i] = usecase.StoreDatasetInput{
			Name:           d.Name,
			Instrument:     d.Instrument,
			DetectionLimit: d.DetectionLimit,
			ExposureTime:   d.ExposureTime,
			Magnitudes:     d.Magnitudes,
		}
	}

	result, err := h.storeUC.BulkStoreDatasets(
		c.UserContext(),
		usecase.BulkStoreDatasetsInput{Datasets: inputs},
	)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDataset),
			errors.Is(err, usecase.ErrNegativeExposure),
			errors.Is(err, usecase.ErrNonFiniteMagnitudes):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_dataset",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"created":    result.Created,
		"duplicates": result.Duplicates,
	})
}
