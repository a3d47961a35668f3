package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"natalify-backend/internal/config"
	"natalify-backend/internal/handlers"
	"natalify-backend/internal/middleware"
	"natalify-backend/internal/payments"
	"natalify-backend/internal/store"
)

func main() {
	config.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if config.AppEnv.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	products := store.NewProductStore(store.SeedProducts())
	orders := store.NewOrderStore(store.SeedOrders())

	stripe := payments.NewStripeClient(config.AppEnv.Stripe.BaseURL, config.AppEnv.Stripe.SecretKey)
	bkash := payments.NewBkashClient(
		config.AppEnv.Bkash.BaseURL,
		config.AppEnv.Bkash.AppKey,
		config.AppEnv.Bkash.AppSecret,
		config.AppEnv.Bkash.Username,
		config.AppEnv.Bkash.Password,
	)

	if config.AppEnv.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health())

		api.GET("/products", handlers.GetProducts(products))
		api.GET("/products/:id", handlers.GetProduct(products))
		api.GET("/products/:id/related", handlers.GetRelatedProducts(products))
		api.GET("/products/search/:query", handlers.SearchProducts(products))
		api.GET("/products/meta/categories", handlers.GetCategories(products))

		api.POST("/orders", handlers.CreateOrder(orders))
		api.GET("/orders/track", handlers.TrackOrders(orders))
		api.POST("/checkout/quote", handlers.CheckoutQuote())

		api.POST("/contact", handlers.Contact())

		api.POST("/payments/stripe/create-payment-intent", handlers.CreateStripePaymentIntent(stripe))
		api.POST("/payments/stripe/confirm-payment", handlers.ConfirmStripePayment(stripe, orders))
		api.POST("/payments/bkash/create", handlers.CreateBkashPayment(bkash, orders))
		api.POST("/payments/bkash/execute", handlers.ExecuteBkashPayment(bkash, orders))

		api.POST("/admin/login", handlers.AdminLogin(
			config.AppEnv.Admin,
			config.AppEnv.JWTSecret,
			config.AppEnv.AccessTokenTTL,
		))

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
		{
			admin.GET("/dashboard", handlers.GetDashboard(products, orders))

			admin.GET("/products", handlers.GetAllProducts(products))
			admin.POST("/products", handlers.CreateProduct(products))
			admin.PUT("/products/:id", handlers.UpdateProduct(products))
			admin.DELETE("/products/:id", handlers.DeleteProduct(products))

			admin.GET("/orders", handlers.GetAllOrders(orders))
			admin.PATCH("/orders/:id/status", handlers.UpdateOrderStatus(orders))
		}
	}

	log.Info().Str("port", config.AppEnv.Port).Msg("starting natalify backend")
	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
