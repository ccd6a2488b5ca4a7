package mealplan

import (
	"net/http"

	mealplanService "pantry-planner/internal/core/mealplan"
	recipeService "pantry-planner/internal/core/recipe"
	"pantry-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves weekly meal-plan requests.
type Handler struct {
	plans *mealplanService.Service
}

// NewHandler creates a meal-plan handler.
func NewHandler(plans *mealplanService.Service) *Handler {
	return &Handler{plans: plans}
}

// AddRequest schedules one recipe on one day.
type AddRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
	Day      string `json:"day" binding:"required"`
}

// HandleAdd schedules a recipe.
func (h *Handler) HandleAdd(c *gin.Context) {
	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": common.ErrCodeInvalidRequest})
		return
	}

	entry, err := h.plans.Add(req.RecipeID, req.Day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// BulkRequest replaces the whole week.
type BulkRequest struct {
	Items []mealplanService.BulkItem `json:"items" binding:"required"`
}

// HandleBulkSet replaces the plan with the given assignments.
func (h *Handler) HandleBulkSet(c *gin.Context) {
	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": common.ErrCodeInvalidRequest})
		return
	}

	entries, err := h.plans.BulkSet(req.Items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// HandleWeek lists the plan ordered by day.
func (h *Handler) HandleWeek(c *gin.Context) {
	entries, err := h.plans.Week()
	if err != nil {
		respondError(c, err)
		return
	}

	byDay := make(map[string][]*mealplanService.Entry, len(mealplanService.Days))
	for _, day := range mealplanService.Days {
		byDay[day] = []*mealplanService.Entry{}
	}
	for _, e := range entries {
		byDay[e.Day] = append(byDay[e.Day], e)
	}

	c.JSON(http.StatusOK, gin.H{
		"days":    byDay,
		"entries": entries,
	})
}

// HandleRemove deletes one entry.
func (h *Handler) HandleRemove(c *gin.Context) {
	if err := h.plans.Remove(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleClear empties the plan.
func (h *Handler) HandleClear(c *gin.Context) {
	if err := h.plans.Clear(); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleShoppingList aggregates the ingredients of every planned recipe.
func (h *Handler) HandleShoppingList(c *gin.Context) {
	items, err := h.plans.ShoppingList(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

func respondError(c *gin.Context, err error) {
	switch {
	case common.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": common.ErrCodeInvalidRequest})
	case err == mealplanService.ErrNotFound || err == recipeService.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": common.ErrCodeNotFound})
	default:
		common.LogError("meal plan request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": common.ErrCodeInternalError})
	}
}
