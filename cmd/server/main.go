package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"farmtotable-be/internal/api"
	"farmtotable-be/internal/auth"
	"farmtotable-be/internal/cart"
	"farmtotable-be/internal/config"
	"farmtotable-be/internal/db"
	"farmtotable-be/internal/logger"
	"farmtotable-be/internal/metrics"
	"farmtotable-be/internal/order"
	"farmtotable-be/internal/product"
	"farmtotable-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	registry := metrics.NewRegistry()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, tokens)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	router := api.NewRouter(api.Deps{
		Products: api.NewProductAPI(productSvc),
		Users:    api.NewUserAPI(userSvc, tokens),
		Carts:    api.NewCartAPI(cartSvc),
		Orders:   api.NewOrderAPI(orderSvc, registry),
		Tokens:   tokens,
		Registry: registry,
		AppEnv:   cfg.AppEnv,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}).Handler(router)

	log.Printf("API server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, handler))
}
