package controllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/turfwars/api-go/logger"
	"github.com/turfwars/api-go/metrics"
	"github.com/turfwars/api-go/territory"
	"github.com/turfwars/api-go/types"
	"github.com/turfwars/api-go/utils"
)

type TerritoryController struct {
	Engine *territory.Engine
}

func NewTerritoryController(engine *territory.Engine) *TerritoryController {
	return &TerritoryController{Engine: engine}
}

// CheckIn godoc
// @Summary Check in at a location and accumulate toward the weekly ownership leaderboard
// @Tags territory
// @Accept json
// @Produce json
// @Param request body types.CheckInRequest true "Check-in payload"
// @Success 200 {object} types.CheckInResponse
// @Router /territory/checkin [post]
func (tc *TerritoryController) CheckIn(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req types.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	position := territory.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	result, err := tc.Engine.CheckIn(c.Request.Context(), user.UserID, req.LocationID, position, time.Now().UTC())
	if err != nil {
		tc.rejectCheckIn(c, err)
		return
	}

	metrics.CheckInsAccepted.Inc()
	if result.OwnershipTransferred {
		metrics.OwnershipTransfers.Inc()
	}

	message := fmt.Sprintf("Checked in at %s! You earned %d fuel points.", result.Location.Name, result.Reward.Fuel)
	if result.Multiplier > 1 {
		message = fmt.Sprintf("SQUAD BONUS! You earned %d fuel points.", result.Reward.Fuel)
	}
	if result.OwnershipTransferred {
		message = fmt.Sprintf("%s is now under your team's control!", result.Location.Name)
	}

	c.JSON(http.StatusOK, types.CheckInResponse{
		Accepted:             true,
		Reward:               result.Reward,
		Multiplier:           result.Multiplier,
		OwnershipTransferred: result.OwnershipTransferred,
		Message:              message,
	})
}

func (tc *TerritoryController) rejectCheckIn(c *gin.Context, err error) {
	var tooFar *territory.TooFarError
	var rateLimited *territory.RateLimitedError

	switch {
	case errors.Is(err, territory.ErrLocationNotFound):
		metrics.CheckInsRejected.WithLabelValues("not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
	case errors.As(err, &tooFar):
		metrics.CheckInsRejected.WithLabelValues("too_far").Inc()
		c.JSON(http.StatusForbidden, gin.H{
			"error":          "You are too far away. Get closer to the location.",
			"distanceMeters": math.Round(tooFar.DistanceMeters),
			"radiusMeters":   tooFar.RadiusMeters,
		})
	case errors.As(err, &rateLimited):
		metrics.CheckInsRejected.WithLabelValues("rate_limited").Inc()
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":             "You already checked in here. Try again shortly.",
			"retryAfterSeconds": int(math.Ceil(rateLimited.RetryAfter.Seconds())),
		})
	default:
		metrics.CheckInsRejected.WithLabelValues("internal").Inc()
		logger.Error(err, zap.String("operation", "checkin"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Check-in failed, nothing was recorded. Safe to retry."})
	}
}

// Capture godoc
// @Summary Capture a location for your team immediately
// @Tags territory
// @Accept json
// @Produce json
// @Param request body types.CaptureRequest true "Capture payload"
// @Success 200 {object} types.CaptureResponse
// @Router /territory/capture [post]
func (tc *TerritoryController) Capture(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req types.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	position := territory.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	result, err := tc.Engine.Capture(c.Request.Context(), user.UserID, req.LocationID, position, time.Now().UTC())
	if err != nil {
		tc.rejectCapture(c, err)
		return
	}

	metrics.CapturesAccepted.Inc()
	metrics.OwnershipTransfers.Inc()

	c.JSON(http.StatusOK, types.CaptureResponse{
		Accepted: true,
		Reward:   result.Reward,
		Message:  fmt.Sprintf("%s has been captured! +%d respect.", result.Location.Name, result.Reward.Respect),
	})
}

func (tc *TerritoryController) rejectCapture(c *gin.Context, err error) {
	var tooFar *territory.TooFarError

	switch {
	case errors.Is(err, territory.ErrLocationNotFound):
		metrics.CapturesRejected.WithLabelValues("not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
	case errors.As(err, &tooFar):
		metrics.CapturesRejected.WithLabelValues("too_far").Inc()
		c.JSON(http.StatusForbidden, gin.H{
			"error":          "You are too far away to capture this location.",
			"distanceMeters": math.Round(tooFar.DistanceMeters),
			"radiusMeters":   tooFar.RadiusMeters,
		})
	case errors.Is(err, territory.ErrAlreadyOwned):
		metrics.CapturesRejected.WithLabelValues("already_owned").Inc()
		c.JSON(http.StatusConflict, gin.H{"error": "This location is already under your team's control!"})
	default:
		metrics.CapturesRejected.WithLabelValues("internal").Inc()
		logger.Error(err, zap.String("operation", "capture"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Capture failed, nothing was recorded. Safe to retry."})
	}
}

// RecentCaptures godoc
// @Summary Live feed of the latest ownership changes
// @Tags territory
// @Produce json
// @Param limit query integer false "Max entries (default 10, max 50)"
// @Success 200 {array} territory.CaptureFeedItem
// @Router /territory/captures [get]
func (tc *TerritoryController) RecentCaptures(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}
	if limit > 50 {
		limit = 50
	}

	feed, err := tc.Engine.RecentCaptures(c.Request.Context(), limit)
	if err != nil {
		logger.Error(err, zap.String("operation", "recent_captures"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch capture feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"captures": feed})
}
