package wire

import (
	"Lumina/internal/api"
	"Lumina/internal/api/config"
	"Lumina/internal/api/handler"
	"Lumina/internal/repository"
	"Lumina/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	postService := service.NewPostService(postRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	mediaService := service.NewMediaService()
	authService := service.NewAuthService()
	assistService := service.NewAssistService()

	handlers := &api.HandlersGroup{
		PostHandler:     handler.NewPostHandler(postService),
		CategoryHandler: handler.NewCategoryHandler(categoryService),
		MediaHandler:    handler.NewMediaHandler(mediaService),
		AuthHandler:     handler.NewAuthHandler(authService),
		AssistHandler:   handler.NewAssistHandler(assistService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
