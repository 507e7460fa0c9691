package api

import (
	"net/http"                         // HTTP status codes
	"order_system/internal/domain"     // Importing domain models
	"order_system/internal/repository" // Paginated listings
	"order_system/internal/utils"      // Cache helpers
	"strconv"                          // Query parameter conversion

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// pageParams reads page/page_size query parameters with sane defaults
func pageParams(c *gin.Context) (page, pageSize int) {
	page = 1      // Default page
	pageSize = 20 // Default page size
	if p := c.Query("page"); p != "" {
		// Convert page to integer
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		// Convert page_size to integer
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v // Set page size if valid
		}
	}
	return page, pageSize
}

// userPage is the cached shape of one admin users listing
type userPage struct {
	Users      []domain.User `json:"users"`       // List of users
	Page       int           `json:"page"`        // Current page
	PageSize   int           `json:"page_size"`   // Page size
	Total      int64         `json:"total"`       // Total number of users
	TotalPages int           `json:"total_pages"` // Total pages
}

// ListUsersAdminHandler returns a paginated listing of all users
func ListUsersAdminHandler(users repository.UserRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page, pageSize := pageParams(c)
		// Cache key carries the pagination parameters
		cacheKey := "admin:users:page=" + strconv.Itoa(page) + ":size=" + strconv.Itoa(pageSize)
		if rdb != nil {
			var cached userPage
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{
					"users":       cached.Users,
					"page":        cached.Page,
					"page_size":   cached.PageSize,
					"total":       cached.Total,
					"total_pages": cached.TotalPages,
					"cached":      true, // Indicate response is from cache
				})
				return
			}
		}
		total, err := users.CountAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
			return
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		list, err := users.FindPage(ctx, offset, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		resp := userPage{Users: list, Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, resp, utils.CacheTTL) // Cache the listing
		}
		c.JSON(http.StatusOK, gin.H{
			"users":       resp.Users,
			"page":        resp.Page,
			"page_size":   resp.PageSize,
			"total":       resp.Total,
			"total_pages": resp.TotalPages,
			"cached":      false, // Indicate response is not from cache
		})
	}
}

// orderPage is the cached shape of one admin orders listing
type orderPage struct {
	Orders     []domain.Order `json:"orders"`      // List of orders
	Page       int            `json:"page"`        // Current page
	PageSize   int            `json:"page_size"`   // Page size
	Total      int64          `json:"total"`       // Total number of orders
	TotalPages int            `json:"total_pages"` // Total pages
}

// orderFilterParams reads the optional status/userId query filters
func orderFilterParams(c *gin.Context) (repository.OrderFilter, bool) {
	var filter repository.OrderFilter
	if s := c.Query("status"); s != "" {
		status := domain.OrderStatus(s)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status: " + s})
			return filter, false
		}
		filter.Status = status // Restrict listing to this status
	}
	if u := c.Query("userId"); u != "" {
		v, err := strconv.ParseUint(u, 10, 64)
		if err != nil || v == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return filter, false
		}
		filter.UserID = uint(v) // Restrict listing to this user
	}
	return filter, true
}

// ListOrdersAdminHandler returns a paginated listing of orders,
// optionally filtered by status and user
func ListOrdersAdminHandler(orders repository.OrderRepository, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page, pageSize := pageParams(c)
		filter, ok := orderFilterParams(c)
		if !ok {
			return // Response already written
		}
		// Cache key carries the pagination and filter parameters
		cacheKey := "admin:orders:page=" + strconv.Itoa(page) + ":size=" + strconv.Itoa(pageSize) +
			":status=" + string(filter.Status) + ":user=" + strconv.FormatUint(uint64(filter.UserID), 10)
		if rdb != nil {
			var cached orderPage
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, gin.H{
					"orders":      cached.Orders,
					"page":        cached.Page,
					"page_size":   cached.PageSize,
					"total":       cached.Total,
					"total_pages": cached.TotalPages,
					"cached":      true, // Indicate response is from cache
				})
				return
			}
		}
		total, err := orders.CountAll(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		list, err := orders.FindPage(ctx, filter, offset, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		resp := orderPage{Orders: list, Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, resp, utils.CacheTTL) // Cache the listing
		}
		c.JSON(http.StatusOK, gin.H{
			"orders":      resp.Orders,
			"page":        resp.Page,
			"page_size":   resp.PageSize,
			"total":       resp.Total,
			"total_pages": resp.TotalPages,
			"cached":      false, // Indicate response is not from cache
		})
	}
}
