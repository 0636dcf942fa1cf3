package handler

import (
	"net/http"
	"time"

	"stempel/internal/delivery/http/response"
	"stempel/internal/domain/entity"
	"stempel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CampaignHandler holds dependencies for owner-side campaign management.
type CampaignHandler struct {
	uc usecase.CampaignUsecase
}

// NewCampaignHandler is the constructor for CampaignHandler, injected by Fx.
func NewCampaignHandler(uc usecase.CampaignUsecase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

type createCampaignRequest struct {
	Name            string    `json:"name" validate:"required"`
	Multiplier      int       `json:"multiplier" validate:"min=1"`
	ExtraPoints     int       `json:"extra_points" validate:"min=0"`
	DailyLimit      int       `json:"daily_limit" validate:"min=0"`
	DiscountPercent int       `json:"discount_percent" validate:"min=0,max=100"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
}

type campaignView struct {
	ID              string `json:"id"`
	StoreID         string `json:"store_id"`
	Name            string `json:"name"`
	Multiplier      int    `json:"multiplier"`
	ExtraPoints     int    `json:"extra_points"`
	DailyLimit      int    `json:"daily_limit"`
	DiscountPercent int    `json:"discount_percent"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Status          string `json:"status"`
}

func toCampaignView(campaign *entity.Campaign) campaignView {
	return campaignView{
		ID:              campaign.ID.String(),
		StoreID:         campaign.StoreID.String(),
		Name:            campaign.Name,
		Multiplier:      campaign.Multiplier,
		ExtraPoints:     campaign.ExtraPoints,
		DailyLimit:      campaign.DailyLimit,
		DiscountPercent: campaign.DiscountPercent,
		StartDate:       campaign.StartDate.Format(time.RFC3339),
		EndDate:         campaign.EndDate.Format(time.RFC3339),
		Status:          string(campaign.Status),
	}
}

// Create launches a new campaign for an owned store.
func (h *CampaignHandler) Create(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Campaign name, dates and non-negative point settings are required")
	}

	campaign, err := h.uc.CreateCampaign(c.Request().Context(), oid, usecase.CreateCampaignInput{
		StoreID:         storeID,
		Name:            req.Name,
		Multiplier:      req.Multiplier,
		ExtraPoints:     req.ExtraPoints,
		DailyLimit:      req.DailyLimit,
		DiscountPercent: req.DiscountPercent,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCampaignView(campaign), "Campaign created successfully")
}

// Get returns one campaign of an owned store.
func (h *CampaignHandler) Get(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}
	campaignID, err := pathUUID(c, "campaignID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	campaign, err := h.uc.GetCampaign(c.Request().Context(), oid, storeID, campaignID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCampaignView(campaign), "Campaign retrieved successfully")
}

// List returns all campaigns of an owned store, newest first.
func (h *CampaignHandler) List(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	campaigns, err := h.uc.ListCampaigns(c.Request().Context(), oid, storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]campaignView, 0, len(campaigns))
	for _, campaign := range campaigns {
		views = append(views, toCampaignView(campaign))
	}

	return response.Success(c, http.StatusOK, views, "Campaigns retrieved successfully")
}

// Deactivate flips an owned campaign to inactive.
func (h *CampaignHandler) Deactivate(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}
	campaignID, err := pathUUID(c, "campaignID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	if err := h.uc.DeactivateCampaign(c.Request().Context(), oid, storeID, campaignID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "inactive"}, "Campaign deactivated successfully")
}
