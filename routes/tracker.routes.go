package routes

import (
	"aquabalance/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterTrackerRoutes(router *gin.Engine, trackerController *controllers.TrackerController) {
	trackerRoutes := router.Group("/tracker")
	{
		trackerRoutes.POST("/:user_id/water", trackerController.LogWater)
		trackerRoutes.POST("/:user_id/food", trackerController.LogFood)
		trackerRoutes.POST("/:user_id/workout", trackerController.LogWorkout)
		trackerRoutes.GET("/:user_id/progress", trackerController.GetProgress)
		trackerRoutes.POST("/:user_id/new-day", trackerController.NewDay)
		trackerRoutes.GET("/:user_id/records", trackerController.GetRecords)
	}
}
