package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/turfwars/api-go/controllers"
)

func SetupTerritoryRoutes(protected *gin.RouterGroup, territoryController *controllers.TerritoryController, locationController *controllers.LocationController) {
	territory := protected.Group("/territory")
	{
		territory.POST("/checkin", territoryController.CheckIn)
		territory.POST("/capture", territoryController.Capture)
		territory.GET("/captures", territoryController.RecentCaptures)
		territory.GET("/locations", locationController.GetLocations)
		territory.GET("/locations/:locationId/standings", locationController.GetStandings)
	}
}
