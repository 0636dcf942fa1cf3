// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"stempel/internal/delivery/http/response"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ScanHandler holds dependencies for the QR scan endpoint.
type ScanHandler struct {
	uc usecase.ScanUsecase
}

// NewScanHandler is the constructor for ScanHandler, injected by Fx.
func NewScanHandler(uc usecase.ScanUsecase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

type scanRequest struct {
	StoreKey   string   `json:"store_key" validate:"required"`
	Token      string   `json:"token" validate:"required"`
	CampaignID string   `json:"campaign_id"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

type scanResponse struct {
	TransactionID    string `json:"transaction_id"`
	Points           int    `json:"points"`
	NewBalance       int    `json:"new_balance"`
	LifetimePoints   int    `json:"lifetime_points"`
	Tier             string `json:"tier"`
	ProgressPercent  int    `json:"progress_percent"`
	PointsToNextTier int    `json:"points_to_next_tier"`
	Clamped          bool   `json:"clamped"`
}

// HandleScan runs the point accrual flow for one QR scan.
func (h *ScanHandler) HandleScan(c echo.Context) error {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req scanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Store key and token are required")
	}

	campaignID := uuid.Nil
	if req.CampaignID != "" {
		parsed, err := uuid.Parse(req.CampaignID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
		}
		campaignID = parsed
	}

	result, err := h.uc.ProcessScan(c.Request().Context(), usecase.ProcessScanInput{
		UserID:        userID,
		StoreKey:      req.StoreKey,
		Token:         req.Token,
		CampaignID:    campaignID,
		ScanLatitude:  req.Latitude,
		ScanLongitude: req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, scanResponse{
		TransactionID:    result.TransactionID.String(),
		Points:           result.Points,
		NewBalance:       result.NewBalance,
		LifetimePoints:   result.LifetimePoints,
		Tier:             string(result.Tier.Tier),
		ProgressPercent:  result.Tier.ProgressPercent,
		PointsToNextTier: result.Tier.PointsToNextTier,
		Clamped:          result.Clamped,
	}, "Points collected successfully")
}
