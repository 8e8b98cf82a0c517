package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/milktea/internal/pkg/signing"
	"github.com/polkiloo/milktea/internal/server/http/handlers"
	"github.com/polkiloo/milktea/internal/server/http/middleware"
	"github.com/polkiloo/milktea/internal/session"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, sessions session.Store, signer *signing.HMACSigner, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest(middleware.DefaultBodyLimit))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	menuHandler := handlers.NewMenuHandler(facade, logger)
	checkoutHandler := handlers.NewCheckoutHandler(facade, logger)
	orderHandler := handlers.NewOrderHandler(facade, logger)
	healthHandler := handlers.NewHealthHandler(facade, logger)

	engine.GET("/healthz", healthHandler.Check)

	flow := engine.Group("")
	flow.Use(middleware.Sessions(sessions, signer, logger))
	flow.GET("/", menuHandler.Enter)
	flow.GET("/menu", menuHandler.Menu)
	flow.GET("/decide", menuHandler.Decide)
	flow.GET("/payment", menuHandler.LegacyPayment)
	flow.GET("/choose-specifics", checkoutHandler.Specifics)
	flow.POST("/choose-specifics", checkoutHandler.SubmitSpecifics)
	flow.GET("/payment-method", checkoutHandler.PaymentMethod)
	flow.POST("/payment-method", checkoutHandler.ChoosePaymentMethod)
	flow.GET("/counter", checkoutHandler.Counter)
	flow.POST("/place-order", checkoutHandler.PlaceOrder)
	flow.GET("/exit", checkoutHandler.Exit)
	flow.POST("/exit", checkoutHandler.Exit)
	flow.GET("/wait/:number", orderHandler.Wait)
	flow.GET("/receive/:number", orderHandler.Receive)
	flow.POST("/receive/:number", orderHandler.ConfirmReceived)
	flow.GET("/enjoy/:number", orderHandler.Enjoy)

	api := engine.Group("/api")
	api.GET("/order-status/:number", orderHandler.Status)
	api.POST("/update-status/:number", orderHandler.UpdateStatus)

	return engine
}
