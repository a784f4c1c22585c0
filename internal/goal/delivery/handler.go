package delivery

import (
	"errors"
	"net/http"

	"lifegoals/internal/goal/usecase"

	"github.com/gin-gonic/gin"
)

// GoalHandler handles goal-related HTTP requests
type GoalHandler struct {
	goalUsecase usecase.GoalUsecase
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalUsecase usecase.GoalUsecase) *GoalHandler {
	return &GoalHandler{
		goalUsecase: goalUsecase,
	}
}

// CreateGoalRequest represents the request body for creating a goal
type CreateGoalRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// GetGoals returns all goals for the authenticated user
// GET /api/goals
func (h *GoalHandler) GetGoals(c *gin.Context) {
	userID := c.GetString("userID")

	goals, err := h.goalUsecase.ListGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goals)
}

// CreateGoal creates a new goal
// POST /api/goals
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalUsecase.CreateGoal(userID, req.Title, req.Description, req.Completed)
	if err != nil {
		if errors.Is(err, usecase.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// UpdateGoal applies a partial update to an existing goal
// PUT /api/goals/:id
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID := c.GetString("userID")
	goalID := c.Param("id")

	var updates usecase.GoalUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalUsecase.UpdateGoal(userID, goalID, updates)
	if err != nil {
		h.writeGoalError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal deletes a goal
// DELETE /api/goals/:id
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID := c.GetString("userID")
	goalID := c.Param("id")

	if err := h.goalUsecase.DeleteGoal(userID, goalID); err != nil {
		h.writeGoalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GoalHandler) writeGoalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrGoalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
