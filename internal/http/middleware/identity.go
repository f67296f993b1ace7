package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/k1ske/gigpay/internal/model"
	"github.com/k1ske/gigpay/internal/repository"
)

// HeaderProfileID carries the caller's profile id on authenticated routes.
const HeaderProfileID = "profile_id"

const profileContextKey = "gigpay.profile"

// Identity resolves the profile_id header to a stored profile and fails
// closed: a missing header, a malformed id or an unknown profile all
// abort the request with 401 before any handler runs.
func Identity(profiles *repository.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderProfileID)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing profile id"})
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid profile id"})
			return
		}

		profile, err := profiles.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown profile"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(profileContextKey, *profile)
		c.Next()
	}
}

// MustProfile returns the profile resolved by Identity for this request.
func MustProfile(c *gin.Context) (model.Profile, bool) {
	value, exists := c.Get(profileContextKey)
	if !exists {
		return model.Profile{}, false
	}
	profile, ok := value.(model.Profile)
	return profile, ok
}
