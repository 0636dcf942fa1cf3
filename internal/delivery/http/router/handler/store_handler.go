package handler

import (
	"net/http"
	"time"

	"stempel/internal/delivery/http/response"
	"stempel/internal/domain/entity"
	"stempel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for owner-side store management handlers.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

type createStoreRequest struct {
	Name              string   `json:"name" validate:"required"`
	ParentStoreID     string   `json:"parent_store_id"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	MaxScanDistance   int      `json:"max_scan_distance"`
	MonitoringEnabled bool     `json:"monitoring_enabled"`
	ScannerType       string   `json:"scanner_type"`
	Country           string   `json:"country"`
}

type updateStoreRequest struct {
	Name              *string  `json:"name"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	MaxScanDistance   *int     `json:"max_scan_distance"`
	MonitoringEnabled *bool    `json:"monitoring_enabled"`
	ScannerType       *string  `json:"scanner_type"`
	Country           *string  `json:"country"`
	IsActive          *bool    `json:"is_active"`
}

type storeView struct {
	ID                 string   `json:"id"`
	ParentStoreID      *string  `json:"parent_store_id,omitempty"`
	Key                string   `json:"key"`
	Name               string   `json:"name"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	MaxScanDistance    int      `json:"max_scan_distance"`
	MonitoringEnabled  bool     `json:"monitoring_enabled"`
	ScannerType        string   `json:"scanner_type"`
	Country            string   `json:"country"`
	IsActive           bool     `json:"is_active"`
	SubscriptionStatus string   `json:"subscription_status"`
	CreatedAt          string   `json:"created_at"`
}

func toStoreView(store *entity.Store) storeView {
	view := storeView{
		ID:                 store.ID.String(),
		Key:                store.Key,
		Name:               store.Name,
		Latitude:           store.Latitude,
		Longitude:          store.Longitude,
		MaxScanDistance:    store.MaxScanDistance,
		MonitoringEnabled:  store.MonitoringEnabled,
		ScannerType:        string(store.ScannerType),
		Country:            store.Country,
		IsActive:           store.IsActive,
		SubscriptionStatus: string(store.SubscriptionStatus),
		CreatedAt:          store.CreatedAt.Format(time.RFC3339),
	}
	if store.ParentStoreID != nil {
		parentID := store.ParentStoreID.String()
		view.ParentStoreID = &parentID
	}

	return view
}

func toStoreViews(stores []*entity.Store) []storeView {
	views := make([]storeView, 0, len(stores))
	for _, store := range stores {
		views = append(views, toStoreView(store))
	}

	return views
}

// authUserID extracts the authenticated user ID from the echo context.
func authUserID(c echo.Context) (uuid.UUID, bool) {
	val := c.Get("userID")
	id, ok := val.(uuid.UUID)

	return id, ok
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// Create handles store registration.
func (h *StoreHandler) Create(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Store name is required")
	}

	input := usecase.CreateStoreInput{
		OwnerID:           oid,
		Name:              req.Name,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		MaxScanDistance:   req.MaxScanDistance,
		MonitoringEnabled: req.MonitoringEnabled,
		ScannerType:       entity.ScannerType(req.ScannerType),
		Country:           req.Country,
	}
	if req.ParentStoreID != "" {
		parentID, err := uuid.Parse(req.ParentStoreID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid parent store ID")
		}
		input.ParentStoreID = &parentID
	}

	store, err := h.uc.CreateStore(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toStoreView(store), "Store created successfully")
}

// Get returns one owned store.
func (h *StoreHandler) Get(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	store, err := h.uc.GetStore(c.Request().Context(), oid, storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreView(store), "Store retrieved successfully")
}

// List returns all stores of the authenticated owner.
func (h *StoreHandler) List(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stores, err := h.uc.ListStores(c.Request().Context(), oid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreViews(stores), "Stores retrieved successfully")
}

// ListFiliales returns the locations grouped under a parent store.
func (h *StoreHandler) ListFiliales(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	parentID, err := pathUUID(c, "storeID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	stores, err := h.uc.ListFiliales(c.Request().Context(), oid, parentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreViews(stores), "Filiales retrieved successfully")
}

// Update applies mutable settings to an owned store.
func (h *StoreHandler) Update(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	var req updateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	input := usecase.UpdateStoreInput{
		Name:              req.Name,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		MaxScanDistance:   req.MaxScanDistance,
		MonitoringEnabled: req.MonitoringEnabled,
		Country:           req.Country,
		IsActive:          req.IsActive,
	}
	if req.ScannerType != nil {
		scannerType := entity.ScannerType(*req.ScannerType)
		input.ScannerType = &scannerType
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), oid, storeID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoreView(store), "Store updated successfully")
}

// RotateToken issues a fresh daily scan token for the store.
func (h *StoreHandler) RotateToken(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	output, err := h.uc.RotateDailyToken(c.Request().Context(), oid, storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"token":      output.Token,
		"store_key":  output.StoreKey,
		"expires_at": output.ExpiresAt,
	}, "Daily token rotated successfully")
}

// QRCode renders the printable scan QR code as a PNG image.
func (h *StoreHandler) QRCode(c echo.Context) error {
	oid, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	storeID, err := pathUUID(c, "storeID")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	png, err := h.uc.GenerateStoreQR(c.Request().Context(), oid, storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
