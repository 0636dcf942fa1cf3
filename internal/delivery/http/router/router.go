// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stempel/internal/delivery/http/middleware"
	"stempel/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ScanHandler     *handler.ScanHandler
	OwnerHandler    *handler.OwnerHandler
	StoreHandler    *handler.StoreHandler
	CampaignHandler *handler.CampaignHandler
	FraudHandler    *handler.FraudHandler
	AccountHandler  *handler.AccountHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	scanHandler     *handler.ScanHandler
	ownerHandler    *handler.OwnerHandler
	storeHandler    *handler.StoreHandler
	campaignHandler *handler.CampaignHandler
	fraudHandler    *handler.FraudHandler
	accountHandler  *handler.AccountHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		scanHandler:     params.ScanHandler,
		ownerHandler:    params.OwnerHandler,
		storeHandler:    params.StoreHandler,
		campaignHandler: params.CampaignHandler,
		fraudHandler:    params.FraudHandler,
		accountHandler:  params.AccountHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/owner", r.ownerHandler.Register)
		authGroup.POST("/login", r.ownerHandler.Login)
		authGroup.POST("/refresh", r.ownerHandler.Refresh)
	}

	// The scan endpoint requires an authenticated customer
	scanGroup := e.Group("/scan")
	scanGroup.Use(r.authMiddleware.Authenticate)
	{
		scanGroup.POST("", r.scanHandler.HandleScan)
	}

	// Customer account routes
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/balance", r.accountHandler.Balance)
		meGroup.GET("/level", r.accountHandler.Level)
		meGroup.GET("/transactions", r.accountHandler.Transactions)
		meGroup.POST("/redeem", r.accountHandler.Redeem)
		meGroup.POST("/fcm-token", r.accountHandler.RegisterFCMToken)
	}

	// Owner routes require authentication and the "owner" role
	ownerGroup := e.Group("/owner")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRole("owner"))
	{
		ownerGroup.POST("/stores", r.storeHandler.Create)
		ownerGroup.GET("/stores", r.storeHandler.List)
		ownerGroup.GET("/stores/:storeID", r.storeHandler.Get)
		ownerGroup.PATCH("/stores/:storeID", r.storeHandler.Update)
		ownerGroup.GET("/stores/:storeID/filiales", r.storeHandler.ListFiliales)
		ownerGroup.POST("/stores/:storeID/token/rotate", r.storeHandler.RotateToken)
		ownerGroup.GET("/stores/:storeID/qr", r.storeHandler.QRCode)

		ownerGroup.POST("/stores/:storeID/campaigns", r.campaignHandler.Create)
		ownerGroup.GET("/stores/:storeID/campaigns", r.campaignHandler.List)
		ownerGroup.GET("/stores/:storeID/campaigns/:campaignID", r.campaignHandler.Get)
		ownerGroup.DELETE("/stores/:storeID/campaigns/:campaignID", r.campaignHandler.Deactivate)

		ownerGroup.GET("/stores/:storeID/suspicious-scans", r.fraudHandler.List)
		ownerGroup.POST("/suspicious-scans/:scanID/review", r.fraudHandler.Review)
	}
}
