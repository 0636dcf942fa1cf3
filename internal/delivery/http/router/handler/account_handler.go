package handler

import (
	"net/http"
	"strconv"
	"time"

	"stempel/internal/delivery/http/response"
	"stempel/internal/domain/entity"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for customer-facing account handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	levelUC   usecase.LevelUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accountUC usecase.AccountUsecase, levelUC usecase.LevelUsecase) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		levelUC:   levelUC,
	}
}

type redeemRequest struct {
	StoreID string `json:"store_id" validate:"required"`
	Points  int    `json:"points" validate:"required,min=1"`
}

type fcmTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type transactionView struct {
	ID         string `json:"id"`
	StoreID    string `json:"store_id"`
	CampaignID string `json:"campaign_id,omitempty"`
	Points     int    `json:"points"`
	Source     string `json:"source"`
	CreatedAt  string `json:"created_at"`
}

func toTransactionView(tx *entity.PointTransaction) transactionView {
	view := transactionView{
		ID:        tx.ID.String(),
		StoreID:   tx.StoreID.String(),
		Points:    tx.Points,
		Source:    string(tx.Source),
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CampaignID != uuid.Nil {
		view.CampaignID = tx.CampaignID.String()
	}

	return view
}

// Balance returns the ledger-derived balance and lifetime points.
func (h *AccountHandler) Balance(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.accountUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"balance":         output.Balance,
		"lifetime_points": output.LifetimePoints,
	}, "Balance retrieved successfully")
}

// Level resolves the user's current loyalty tier.
func (h *AccountHandler) Level(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.levelUC.GetLevel(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"tier":                string(output.Status.Tier),
		"vip_eligible":        output.Status.VIPEligible,
		"progress_percent":    output.Status.ProgressPercent,
		"points_to_next_tier": output.Status.PointsToNextTier,
		"lifetime_points":     output.LifetimePoints,
		"balance":             output.Balance,
	}, "Level retrieved successfully")
}

// Transactions returns the user's ledger history, newest first.
func (h *AccountHandler) Transactions(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	transactions, err := h.accountUC.GetHistory(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]transactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, toTransactionView(tx))
	}

	return response.Success(c, http.StatusOK, views, "Transactions retrieved successfully")
}

// Redeem deducts points from the user's balance.
func (h *AccountHandler) Redeem(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req redeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redeem input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Store ID and a positive point amount are required")
	}

	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	output, err := h.accountUC.Redeem(c.Request().Context(), usecase.RedeemInput{
		UserID:  userID,
		StoreID: storeID,
		Points:  req.Points,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"transaction_id": output.TransactionID.String(),
		"new_balance":    output.NewBalance,
	}, "Points redeemed successfully")
}

// RegisterFCMToken stores the push token used for level-change notices.
func (h *AccountHandler) RegisterFCMToken(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req fcmTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Token is required")
	}

	if err := h.accountUC.RegisterFCMToken(c.Request().Context(), userID, req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "registered"}, "FCM token registered successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
