package route

import (
	"antopolis/config"
	"antopolis/controller"
	"antopolis/utils"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with CORS, logging, recovery and every route registered.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(utils.RequestLogger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	FoodRoutes(router)
	CategoryRoutes(router)
	SystemRoutes(router)
	return router
}

func FoodRoutes(router *gin.Engine) {
	foodGroup := router.Group("/foodItem")
	{
		foodGroup.POST("", utils.Upload("image", "food"), controller.CreateFoodItem)
		foodGroup.POST("/import", controller.ImportFoodItems)
		foodGroup.GET("", controller.GetFoodItems)
		foodGroup.GET("/:id", controller.GetFoodItemByID)
		foodGroup.DELETE("/:id", controller.DeleteFoodItem)
	}
}

func CategoryRoutes(router *gin.Engine) {
	categoryGroup := router.Group("/category")
	{
		categoryGroup.POST("", controller.CreateCategory)
		categoryGroup.GET("", controller.GetCategories)
	}
}

func SystemRoutes(router *gin.Engine) {
	router.GET("/", controller.Home)
	router.GET("/health", controller.Health)
	router.GET("/uploads/:filename", controller.ServeUpload)
}
