package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"aquabalance/internal/models"
	"aquabalance/internal/services"

	"github.com/gin-gonic/gin"
)

type TrackerController struct {
	tracker *services.Tracker
}

func NewTrackerController(tracker *services.Tracker) *TrackerController {
	return &TrackerController{tracker: tracker}
}

type logWaterRequest struct {
	AmountML int `json:"amount_ml" binding:"required"`
}

type logFoodRequest struct {
	Description string `json:"description" binding:"required"`
}

type logWorkoutRequest struct {
	Description     string `json:"description" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
}

// LogWater godoc
// @Summary Log drunk water
// @Description Add a water amount in mL to today's record
// @Tags tracker
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param body body logWaterRequest true "Water amount"
// @Success 200 {object} map[string]interface{} "Water logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Profile or day not found"
// @Router /tracker/{user_id}/water [post]
func (tc *TrackerController) LogWater(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req logWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := tc.tracker.LogWater(userID, req.AmountML); err != nil {
		respondTrackerError(c, "Failed to log water", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Water logged successfully",
		"data":    gin.H{"user_id": userID, "amount_ml": req.AmountML},
	})
}

// LogFood godoc
// @Summary Log eaten food
// @Description Resolve the calorie content of a food description and add it to today's record
// @Tags tracker
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param body body logFoodRequest true "Food description"
// @Success 200 {object} map[string]interface{} "Food logged successfully"
// @Failure 404 {object} map[string]interface{} "Profile, day or product not found"
// @Router /tracker/{user_id}/food [post]
func (tc *TrackerController) LogFood(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req logFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	kcal, err := tc.tracker.LogFood(c.Request.Context(), userID, req.Description)
	if err != nil {
		respondTrackerError(c, "Failed to log food", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food logged successfully",
		"data":    gin.H{"user_id": userID, "logged_calories": kcal},
	})
}

// LogWorkout godoc
// @Summary Log a workout
// @Description Resolve burned calories for an exercise description, add them to today's record and raise the water goal
// @Tags tracker
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param body body logWorkoutRequest true "Workout description and duration"
// @Success 200 {object} map[string]interface{} "Workout logged successfully"
// @Failure 404 {object} map[string]interface{} "Profile, day or exercise not found"
// @Router /tracker/{user_id}/workout [post]
func (tc *TrackerController) LogWorkout(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req logWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	result, err := tc.tracker.LogWorkout(c.Request.Context(), userID, req.Description, req.DurationMinutes)
	if err != nil {
		respondTrackerError(c, "Failed to log workout", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout logged successfully",
		"data":    result,
	})
}

// GetProgress godoc
// @Summary Get today's progress
// @Description Retrieve today's progress snapshot for a user
// @Tags tracker
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Progress retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile or day not found"
// @Router /tracker/{user_id}/progress [get]
func (tc *TrackerController) GetProgress(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	snapshot, err := tc.tracker.Snapshot(userID)
	if err != nil {
		respondTrackerError(c, "Failed to retrieve progress", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Progress retrieved successfully",
		"data":    snapshot,
	})
}

// NewDay godoc
// @Summary Start a new day
// @Description Open today's record with freshly computed goals
// @Tags tracker
// @Produce json
// @Param user_id path int true "User ID"
// @Success 201 {object} map[string]interface{} "Day started successfully"
// @Failure 404 {object} map[string]interface{} "Profile or city not found"
// @Failure 409 {object} map[string]interface{} "Day already started"
// @Router /tracker/{user_id}/new-day [post]
func (tc *TrackerController) NewDay(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	goals, err := tc.tracker.NewDay(c.Request.Context(), userID)
	if err != nil {
		respondTrackerError(c, "Failed to start a new day", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Day started successfully",
		"data":    goals,
	})
}

// GetRecords godoc
// @Summary Get recent daily records
// @Description Retrieve the user's daily records for the last N days, oldest first
// @Tags tracker
// @Produce json
// @Param user_id path int true "User ID"
// @Param days query int false "Number of days (default 7)"
// @Success 200 {object} map[string]interface{} "Records retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /tracker/{user_id}/records [get]
func (tc *TrackerController) GetRecords(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid days parameter",
				"error":   "days must be a valid positive integer",
			})
			return
		}
		days = parsed
	}

	records, err := tc.tracker.RecentRecords(userID, days)
	if err != nil {
		respondTrackerError(c, "Failed to retrieve records", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Records retrieved successfully",
		"data":    records,
	})
}

// respondTrackerError maps the domain error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a 500.
func respondTrackerError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case models.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrProfileMissing),
		errors.Is(err, models.ErrNoSuchDay),
		errors.Is(err, models.ErrCityNotFound),
		errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrExerciseNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrDayAlreadyOpen):
		status = http.StatusConflict
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}
