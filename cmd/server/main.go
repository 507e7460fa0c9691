package main

import (
	"context"                          // context package is needed for Redis operations
	"log"                              // log package is needed for logging
	"order_system/internal/api"        // Custom package for API handlers
	"order_system/internal/config"     // Custom package for configuration
	"order_system/internal/db"         // Custom package for database access
	"order_system/internal/middleware" // Custom package for middleware
	"order_system/internal/repository" // Custom package for repositories
	"order_system/internal/service"    // Custom package for domain services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Repositories and services
	userRepo := repository.NewGormUserRepository(gdb)         // Users table
	orderRepo := repository.NewGormOrderRepository(gdb)       // Orders table
	operatorRepo := repository.NewGormOperatorRepository(gdb) // Operators table
	userSvc := service.NewUserService(userRepo)               // User service
	orderSvc := service.NewOrderService(orderRepo)            // Order service

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New()        // Gin router instance
	r.Use(gin.Recovery()) // Panics become 500s before the request logger sees them

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/auth/register", api.RegisterOperatorHandler(operatorRepo))          // Operator registration endpoint
	r.POST("/auth/login", api.LoginOperatorHandler(operatorRepo, cfg.JWTSecret)) // Operator login endpoint

	// Every /api route goes through the request logger
	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.RequestLogger())

	// User routes
	users := apiGroup.Group("/users")
	users.POST("", api.CreateUserHandler(userSvc))                    // Create user endpoint
	users.GET("", api.GetAllUsersHandler(userSvc))                    // List users endpoint
	users.GET("/:id", api.GetUserHandler(userSvc, redisClient))       // Get user endpoint
	users.GET("/email/:email", api.GetUserByEmailHandler(userSvc))    // Get user by email endpoint
	users.PUT("/:id", api.UpdateUserHandler(userSvc, redisClient))    // Update user endpoint
	users.DELETE("/:id", api.DeleteUserHandler(userSvc, redisClient)) // Delete user endpoint

	// Order routes
	orders := apiGroup.Group("/orders")
	orders.POST("", api.CreateOrderHandler(orderSvc))                              // Create order endpoint
	orders.GET("", api.GetAllOrdersHandler(orderSvc))                              // List orders endpoint
	orders.GET("/:id", api.GetOrderHandler(orderSvc, redisClient))                 // Get order endpoint
	orders.GET("/number/:orderNumber", api.GetOrderByNumberHandler(orderSvc))      // Get order by number endpoint
	orders.GET("/user/:userId", api.GetOrdersByUserHandler(orderSvc))              // List orders by user endpoint
	orders.PUT("/:id/status", api.UpdateOrderStatusHandler(orderSvc, redisClient)) // Update order status endpoint
	orders.PUT("/:id", api.UpdateOrderHandler(orderSvc, redisClient))              // Update order endpoint
	orders.DELETE("/:id", api.DeleteOrderHandler(orderSvc, redisClient))           // Delete order endpoint

	// Admin routes (protected, admin only)
	adminGroup := apiGroup.Group("/admin")
	// Protect admin routes with JWT and AdminOnly middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(operatorRepo))
	adminGroup.GET("/users", api.ListUsersAdminHandler(userRepo, redisClient))    // Paginated users listing
	adminGroup.GET("/orders", api.ListOrdersAdminHandler(orderRepo, redisClient)) // Paginated orders listing

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
