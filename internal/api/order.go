package api

import (
	"errors"                        // Error inspection for status mapping
	"net/http"                      // HTTP status codes
	"order_system/internal/domain"  // Importing domain models
	"order_system/internal/service" // Domain services
	"order_system/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// CreateOrderHandler persists a new order from the request body. The server
// assigns the order number and timestamps regardless of what the client sent.
func CreateOrderHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order domain.Order // Bind JSON request to the entity
		if err := c.ShouldBindJSON(&order); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// A missing status defaults to PENDING, an unknown one is rejected
		if order.Status == "" {
			order.Status = domain.StatusPending
		} else if !order.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}
		created, err := svc.CreateOrder(c.Request.Context(), &order)
		if err != nil {
			_ = c.Error(err) // Surface the failure to the request logger
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		c.JSON(http.StatusCreated, created) // Return the saved record with its id
	}
}

// GetOrderHandler returns one order by id, read through the cache when available
func GetOrderHandler(svc *service.OrderService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		ctx := c.Request.Context()
		// A nil client means caching is disabled
		if rdb != nil {
			var cached domain.Order
			if found, err := utils.GetCache(ctx, rdb, utils.OrderCacheKey(id), &cached); err == nil && found {
				c.JSON(http.StatusOK, cached) // Serve the cached record
				return
			}
		}
		order, err := svc.GetOrderByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				c.Status(http.StatusNotFound) // Absence is an empty 404
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, utils.OrderCacheKey(id), order, utils.CacheTTL) // Cache for subsequent reads
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetAllOrdersHandler returns every order
func GetAllOrdersHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.GetAllOrders(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByNumberHandler returns one order by its unique order number
func GetOrderByNumberHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderNumber := c.Param("orderNumber")
		order, err := svc.GetOrderByOrderNumber(c.Request.Context(), orderNumber)
		if err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				c.Status(http.StatusNotFound) // Absence is an empty 404
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetOrdersByUserHandler returns all orders referencing a user id
func GetOrdersByUserHandler(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "userId")
		if !ok {
			return
		}
		orders, err := svc.GetOrdersByUserID(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatusHandler sets the status from the ?status query parameter
func UpdateOrderStatusHandler(svc *service.OrderService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		status := domain.OrderStatus(c.Query("status"))
		// Only membership in the enum is validated, any transition is allowed
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}
		updated, err := svc.UpdateOrderStatus(c.Request.Context(), id, status)
		if err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		// Invalidate the stale cached record
		if rdb != nil {
			_ = utils.DeleteCache(c.Request.Context(), rdb, utils.OrderCacheKey(id))
		}
		c.JSON(http.StatusOK, updated)
	}
}

// UpdateOrderHandler overwrites description/totalAmount of an existing order
func UpdateOrderHandler(svc *service.OrderService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		var details domain.Order // Bind JSON request to the entity
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		updated, err := svc.UpdateOrder(c.Request.Context(), id, &details)
		if err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		// Invalidate the stale cached record
		if rdb != nil {
			_ = utils.DeleteCache(c.Request.Context(), rdb, utils.OrderCacheKey(id))
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteOrderHandler removes an order by id
func DeleteOrderHandler(svc *service.OrderService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteOrder(c.Request.Context(), id); err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		// Invalidate the cached record
		if rdb != nil {
			_ = utils.DeleteCache(c.Request.Context(), rdb, utils.OrderCacheKey(id))
		}
		c.Status(http.StatusNoContent)
	}
}
