package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"aquabalance/internal/models"
	"aquabalance/internal/repository"
	"aquabalance/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	repo    repository.ProfileRepository
	tracker *services.Tracker
}

func NewProfileController(repo repository.ProfileRepository, tracker *services.Tracker) *ProfileController {
	return &ProfileController{repo: repo, tracker: tracker}
}

type setWeightRequest struct {
	WeightKg float64 `json:"weight_kg" binding:"required"`
}

// GetProfile godoc
// @Summary Get a user's profile
// @Description Retrieve the stored profile for a user
// @Tags profile
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile/{user_id} [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	profile, err := pc.repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, models.ErrProfileMissing) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Profile not found",
				"error":   "No profile exists for the provided user ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// SetWeight godoc
// @Summary Update a user's weight
// @Description Update just the weight attribute of an existing profile
// @Tags profile
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param body body setWeightRequest true "New weight"
// @Success 200 {object} map[string]interface{} "Weight updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile/{user_id}/weight [put]
func (pc *ProfileController) SetWeight(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req setWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := pc.tracker.SetWeight(userID, req.WeightKg); err != nil {
		respondTrackerError(c, "Failed to update weight", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weight updated successfully",
		"data":    gin.H{"user_id": userID, "weight_kg": req.WeightKg},
	})
}

func parseUserID(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return 0, false
	}
	return userID, true
}
