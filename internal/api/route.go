package api

import (
	"Lumina/internal/api/middleware"
	"Lumina/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & CORS & Logger
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.AuditMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		apiGroup.POST("/auth/login", group.AuthHandler.Login)

		postGroup := apiGroup.Group("/posts")
		{
			// 公开阅读接口
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/:id", group.PostHandler.GetPost)

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.SavePost)
				authGroup.DELETE("/:id", group.PostHandler.DeletePost)
			}
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.GET("", group.CategoryHandler.ListCategories)

			authGroup := categoryGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.CategoryHandler.CreateCategory)
				authGroup.DELETE("/:id", group.CategoryHandler.DeleteCategory)
			}
		}

		uploadGroup := apiGroup.Group("/upload")
		{
			uploadGroup.Use(middleware.AuthMiddleware())
			uploadGroup.PUT("", group.MediaHandler.Upload)
		}

		assistGroup := apiGroup.Group("/assist")
		{
			assistGroup.Use(middleware.AuthMiddleware())
			assistGroup.POST("/ideas", group.AssistHandler.GenerateIdeas)
			assistGroup.POST("/summary", group.AssistHandler.GenerateSummary)
			assistGroup.POST("/improve", group.AssistHandler.ImproveWriting)
		}
	}

	return r
}
