package handlers

import (
	"net/http"
	"strconv"

	"github.com/PelvK/club-sarmiento-management-sub001/models"
	"github.com/PelvK/club-sarmiento-management-sub001/repository"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// IdentityMiddleware resolves the caller from the X-User-ID header and stores
// it in the request context. Session handling lives in front of this service;
// here we only need the identity to feed the permission checks.
func IdentityMiddleware() gin.HandlerFunc {
	userRepo := repository.NewUserRepository()

	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.GetHeader("X-User-ID"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid X-User-ID header"})
			return
		}

		user, err := userRepo.GetByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// currentUser returns the caller identity stored by IdentityMiddleware
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
