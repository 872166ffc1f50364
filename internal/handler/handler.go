package handler

import (
	"github.com/GalleryApp/post-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	if origin := viper.GetString("client.origin"); origin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{origin},
			AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	posts := r.Group("/posts")
	{
		posts.GET("", h.postsList)
		posts.POST("", h.adminMiddleware, h.postsCreate)

		post := posts.Group("/:postID")
		{
			post.GET("", h.postsGetByID)
			post.GET("/content", h.postsGetContent)
			post.PUT("", h.adminMiddleware, h.postsUpdate)
			post.DELETE("", h.adminMiddleware, h.postsDelete)
		}
	}

	return r
}
