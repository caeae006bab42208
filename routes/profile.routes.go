package routes

import (
	"aquabalance/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.Engine, profileController *controllers.ProfileController) {
	profileRoutes := router.Group("/profile")
	{
		profileRoutes.GET("/:user_id", profileController.GetProfile)
		profileRoutes.PUT("/:user_id/weight", profileController.SetWeight)
	}
}
