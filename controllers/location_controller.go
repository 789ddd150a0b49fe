package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/turfwars/api-go/logger"
	"github.com/turfwars/api-go/models"
	"github.com/turfwars/api-go/types"
)

type LocationController struct {
	DB *gorm.DB
	// LeaderboardWindow is the lookback of the standings view, matching the
	// window OwnershipResolver uses.
	LeaderboardWindow time.Duration
}

func NewLocationController(db *gorm.DB, leaderboardWindow time.Duration) *LocationController {
	return &LocationController{DB: db, LeaderboardWindow: leaderboardWindow}
}

// GetLocations godoc
// @Summary List locations with current ownership, optionally filtered by distance
// @Tags territory
// @Produce json
// @Param latitude query number false "Center latitude"
// @Param longitude query number false "Center longitude"
// @Param radius query number false "Search radius in kilometers"
// @Param category query string false "Filter by category"
// @Param limit query integer false "Maximum number of locations"
// @Success 200 {object} map[string]interface{}
// @Router /territory/locations [get]
func (lc *LocationController) GetLocations(c *gin.Context) {
	var query types.LocationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := 100
	if query.Limit > 0 && query.Limit < limit {
		limit = query.Limit
	}

	db := lc.DB.Model(&models.Location{}).
		Select("locations.id, locations.name, locations.latitude, locations.longitude, locations.owner_team_id, teams.name AS owner_team_name, locations.weekly_visit_count").
		Joins("LEFT JOIN teams ON teams.id = locations.owner_team_id")

	if query.Category != "" {
		db = db.Where("? = ANY(locations.categories)", query.Category)
	}

	if query.Latitude != 0 || query.Longitude != 0 {
		radius := 20.0
		if query.Radius > 0 {
			radius = query.Radius
		}
		distanceCalc := "(6371 * acos(cos(radians(?)) * cos(radians(locations.latitude)) * cos(radians(locations.longitude) - radians(?)) + sin(radians(?)) * sin(radians(locations.latitude))))"
		db = db.Select("locations.id, locations.name, locations.latitude, locations.longitude, locations.owner_team_id, teams.name AS owner_team_name, locations.weekly_visit_count, "+distanceCalc+" AS distance",
			query.Latitude, query.Longitude, query.Latitude).
			Where(distanceCalc+" <= ?", query.Latitude, query.Longitude, query.Latitude, radius).
			Order("distance")
	} else {
		db = db.Order("locations.name")
	}

	var markers []types.LocationMarker
	if err := db.Limit(limit).Scan(&markers).Error; err != nil {
		logger.Error(err, zap.String("operation", "list_locations"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching locations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": markers})
}

// GetStandings godoc
// @Summary Per-team visit counts for one location over the rolling leaderboard window
// @Tags territory
// @Produce json
// @Param locationId path integer true "Location ID"
// @Success 200 {object} types.StandingsResponse
// @Router /territory/locations/{locationId}/standings [get]
func (lc *LocationController) GetStandings(c *gin.Context) {
	id := c.Param("locationId")

	var location models.Location
	if err := lc.DB.First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
		logger.Error(err, zap.String("operation", "standings"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching location"})
		return
	}

	windowStart := time.Now().UTC().Add(-lc.LeaderboardWindow)

	var standings []types.TeamStanding
	err := lc.DB.Model(&models.VisitRecord{}).
		Select("visit_records.team_id, teams.name AS team_name, COUNT(*) AS visits").
		Joins("JOIN teams ON teams.id = visit_records.team_id").
		Where("visit_records.location_id = ? AND visit_records.created_at >= ?", location.ID, windowStart).
		Group("visit_records.team_id, teams.name").
		Order("visits DESC, visit_records.team_id").
		Scan(&standings).Error
	if err != nil {
		logger.Error(err, zap.String("operation", "standings"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching standings"})
		return
	}

	c.JSON(http.StatusOK, types.StandingsResponse{
		LocationID:  location.ID,
		OwnerTeamID: location.OwnerTeamID,
		WindowStart: windowStart,
		Standings:   standings,
	})
}
