package middleware

import (
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminOnly returns a middleware that restricts a route to admin accounts.
// The role claim is re-checked against the database so a demoted or banned
// admin loses access before their token expires.
func AdminOnly(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != models.RoleAdmin {
			response.Forbidden(c, "admin privileges required")
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(GetUserID(c))
		if err != nil {
			response.Unauthorized(c, "invalid user id format")
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			response.Unauthorized(c, "user not found")
			c.Abort()
			return
		}
		if user.Role != models.RoleAdmin || !user.IsActive || user.IsBanned {
			response.Forbidden(c, "admin privileges required")
			c.Abort()
			return
		}

		c.Next()
	}
}
