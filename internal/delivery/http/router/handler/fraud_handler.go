package handler

import (
	"net/http"
	"strconv"
	"time"

	"stempel/internal/delivery/http/response"
	"stempel/internal/domain/entity"
	"stempel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FraudHandler holds dependencies for the owner-side review of flagged scans.
type FraudHandler struct {
	uc usecase.FraudUsecase
}

// NewFraudHandler is the constructor for FraudHandler, injected by Fx.
func NewFraudHandler(uc usecase.FraudUsecase) *FraudHandler {
	return &FraudHandler{uc: uc}
}

type reviewRequest struct {
	Status string `json:"status" validate:"required,oneof=reviewed dismissed blocked"`
}

type suspiciousScanView struct {
	ID             string   `json:"id"`
	StoreID        string   `json:"store_id"`
	UserID         string   `json:"user_id"`
	ScanLatitude   float64  `json:"scan_latitude"`
	ScanLongitude  float64  `json:"scan_longitude"`
	StoreLatitude  *float64 `json:"store_latitude,omitempty"`
	StoreLongitude *float64 `json:"store_longitude,omitempty"`
	DistanceMeters *int     `json:"distance_meters,omitempty"`
	Reason         string   `json:"reason"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at"`
}

func toSuspiciousScanView(scan *entity.SuspiciousScan) suspiciousScanView {
	return suspiciousScanView{
		ID:             scan.ID.String(),
		StoreID:        scan.StoreID.String(),
		UserID:         scan.UserID.String(),
		ScanLatitude:   scan.ScanLatitude,
		ScanLongitude:  scan.ScanLongitude,
		StoreLatitude:  scan.StoreLatitude,
		StoreLongitude: scan.StoreLongitude,
		DistanceMeters: scan.DistanceMeters,
		Reason:         string(scan.Reason),
		Status:         string(scan.Status),
		CreatedAt:      scan.CreatedAt.Format(time.RFC3339),
	}
}

// List returns geofence-rejected scans of an owned store.
func (h *FraudHandler) List(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	scans, err := h.uc.ListSuspiciousScans(c.Request().Context(), oid, usecase.ListSuspiciousScansInput{
		StoreID: storeID,
		Status:  entity.ReviewStatus(c.QueryParam("status")),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]suspiciousScanView, 0, len(scans))
	for _, scan := range scans {
		views = append(views, toSuspiciousScanView(scan))
	}

	return response.Success(c, http.StatusOK, views, "Suspicious scans retrieved successfully")
}

// Review moves a flagged scan to a new review status.
func (h *FraudHandler) Review(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	scanID, err := pathUUID(c, "scanID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid scan ID")
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Status must be reviewed, dismissed or blocked")
	}

	if err := h.uc.ReviewSuspiciousScan(c.Request().Context(), oid, scanID, entity.ReviewStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status}, "Scan reviewed successfully")
}
