package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"arta-api/internal/config"
	"arta-api/internal/dto"
	"arta-api/internal/handler"
	"arta-api/internal/middleware"
)

type Server struct {
	echo             *echo.Echo
	authCfg          config.Auth
	orderHandler     *handler.OrderHandler
	promotionHandler *handler.PromotionHandler
	catalogHandler   *handler.CatalogHandler
}

func NewServer(
	authCfg config.Auth,
	orderHandler *handler.OrderHandler,
	promotionHandler *handler.PromotionHandler,
	catalogHandler *handler.CatalogHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:             e,
		authCfg:          authCfg,
		orderHandler:     orderHandler,
		promotionHandler: promotionHandler,
		catalogHandler:   catalogHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to arta-api"})
	})

	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.HealthResponse{
			Success:   true,
			Message:   "API is healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	v2 := s.echo.Group("/v2")

	v2.GET("/partner/orders", s.orderHandler.GetPartnerOrders)
	v2.GET("/in-progress/orders", s.orderHandler.GetInProgressOrders)
	v2.GET("/products", s.catalogHandler.GetProductMappings)
	v2.GET("/promo/validate/:productCode/:promoCode", s.promotionHandler.ValidatePromotion)
	v2.GET("/regions", s.catalogHandler.GetRegions)

	// mutating routes
	var guards []echo.MiddlewareFunc
	if s.authCfg.Enabled {
		guards = append(guards, middleware.JWTAuth(s.authCfg.JWTSecret))
	}
	v2.POST("/refund/force", s.orderHandler.ForceRefund, guards...)
	v2.POST("/order/recovery", s.orderHandler.RecoverOrder, guards...)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
