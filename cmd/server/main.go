package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "glutation/docs" // swagger docs

	"glutation/internal/cache"
	"glutation/internal/config"
	"glutation/internal/handler"
	"glutation/internal/repository"
	"glutation/internal/router"
	"glutation/internal/service"
)

// @title API REST de Glutation
// @version 1.0
// @description API de demostración para la tienda Glutation: registro, catálogo, contacto, pedidos y administración.
// @host localhost:3001
// @BasePath /
// @schemes http
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// All state lives in these stores; a restart resets everything.
	userRepo := repository.NewUserRepository()
	productRepo := repository.NewProductRepository()
	orderRepo := repository.NewOrderRepository()
	contactRepo := repository.NewContactRepository()

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, cacheClient, cfg.ProductCacheTTL)
	contactService := service.NewContactService(contactRepo)
	orderService := service.NewOrderService(orderRepo, userRepo, productRepo)

	homeHandler := handler.NewHomeHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	contactHandler := handler.NewContactHandler(contactService)
	orderHandler := handler.NewOrderHandler(orderService)
	adminHandler := handler.NewAdminHandler(userService, orderService)

	router.Register(
		e,
		cfg,
		homeHandler,
		authHandler,
		productHandler,
		contactHandler,
		orderHandler,
		adminHandler,
	)

	addr := ":" + cfg.Port
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
