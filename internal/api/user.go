package api

import (
	"errors"                        // Error inspection for status mapping
	"net/http"                      // HTTP status codes
	"order_system/internal/domain"  // Importing domain models
	"order_system/internal/service" // Domain services
	"order_system/internal/utils"   // Cache helpers
	"strconv"                       // Path parameter conversion

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// parseIDParam converts the :id path parameter into a uint
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// CreateUserHandler persists a new user from the request body
func CreateUserHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.User // Bind JSON request to the entity
		if err := c.ShouldBindJSON(&user); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		created, err := svc.CreateUser(c.Request.Context(), &user)
		if err != nil {
			_ = c.Error(err) // Surface the failure to the request logger
			// Duplicate email is a caller error; anything else is storage failure
			if errors.Is(err, domain.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, created) // Return the saved record with its id
	}
}

// GetUserHandler returns one user by id, read through the cache when available
func GetUserHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		ctx := c.Request.Context()
		// A nil client means caching is disabled
		if rdb != nil {
			var cached domain.User
			if found, err := utils.GetCache(ctx, rdb, utils.UserCacheKey(id), &cached); err == nil && found {
				c.JSON(http.StatusOK, cached) // Serve the cached record
				return
			}
		}
		user, err := svc.GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.Status(http.StatusNotFound) // Absence is an empty 404
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, utils.UserCacheKey(id), user, utils.CacheTTL) // Cache for subsequent reads
		}
		c.JSON(http.StatusOK, user)
	}
}

// GetAllUsersHandler returns every user
func GetAllUsersHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.GetAllUsers(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GetUserByEmailHandler returns one user by its unique email
func GetUserByEmailHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		user, err := svc.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.Status(http.StatusNotFound) // Absence is an empty 404
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateUserHandler overwrites name/email/phone of an existing user
func UpdateUserHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		var details domain.User // Bind JSON request to the entity
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		updated, err := svc.UpdateUser(c.Request.Context(), id, &details)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			if errors.Is(err, domain.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		// Invalidate the stale cached record
		if rdb != nil {
			_ = utils.DeleteCache(c.Request.Context(), rdb, utils.UserCacheKey(id))
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteUserHandler removes a user by id
func DeleteUserHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteUser(c.Request.Context(), id); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		// Invalidate the cached record
		if rdb != nil {
			_ = utils.DeleteCache(c.Request.Context(), rdb, utils.UserCacheKey(id))
		}
		c.Status(http.StatusNoContent)
	}
}
