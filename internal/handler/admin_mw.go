package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/GalleryApp/post-service/internal/dto"
	"github.com/GalleryApp/post-service/pkg/utils"
	"github.com/gin-gonic/gin"
)

// adminMiddleware guards mutating routes behind the admin dashboard's bearer
// token. When AUTH_ACCESS_SECRET is unset the guard is disabled and requests
// pass through untouched.
func (h *Handler) adminMiddleware(c *gin.Context) {
	secret := os.Getenv("AUTH_ACCESS_SECRET")
	if secret == "" {
		c.Next()
		return
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized.Error()))
		c.Abort()
		return
	}

	accessToken := strings.TrimPrefix(header, "Bearer ")
	if accessToken == "" {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized.Error()))
		c.Abort()
		return
	}

	if _, err := utils.DecodeJWT(accessToken, []byte(secret)); err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized.Error()))
		c.Abort()
		return
	}

	c.Next()
}
