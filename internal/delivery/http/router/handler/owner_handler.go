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

// OwnerHandler holds dependencies for owner authentication handlers.
type OwnerHandler struct {
	uc usecase.OwnerUsecase
}

// NewOwnerHandler is the constructor for OwnerHandler, injected by Fx.
func NewOwnerHandler(uc usecase.OwnerUsecase) *OwnerHandler {
	return &OwnerHandler{uc: uc}
}

type registerOwnerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ownerView is the owner representation safe to return; it never carries
// the password hash.
type ownerView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func toOwnerView(owner *entity.StoreOwner) ownerView {
	return ownerView{
		ID:        owner.ID.String(),
		Name:      owner.Name,
		Email:     owner.Email,
		CreatedAt: owner.CreatedAt.Format(time.RFC3339),
	}
}

// Register handles the owner registration request.
func (h *OwnerHandler) Register(c echo.Context) error {
	var req registerOwnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Name, email and a password of at least 8 characters are required")
	}

	output, err := h.uc.RegisterOwner(c.Request().Context(), usecase.RegisterOwnerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOwnerView(output.Owner), "Owner registered successfully")
}

// Login handles the owner login request.
func (h *OwnerHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Email and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"owner":         toOwnerView(output.Owner),
	}, "Login successful")
}

// Refresh handles the token refresh request.
func (h *OwnerHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Refresh token is required")
	}

	output, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
	}, "Token refreshed successfully")
}
