package recipe

import (
	"net/http"

	"pantry-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShoppingListRequest selects the recipes to aggregate.
type ShoppingListRequest struct {
	RecipeIDs []string `json:"recipe_ids" binding:"required"`
}

// HandleShoppingList aggregates the ingredients of the selected recipes
// into a consolidated, display-ready shopping list.
func (h *Handler) HandleShoppingList(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": common.ErrCodeInvalidRequest})
		return
	}

	items, err := h.recipes.BuildShoppingList(c.Request.Context(), req.RecipeIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	common.LogInfo("shopping list built",
		zap.String("request_id", requestID),
		zap.Int("recipes", len(req.RecipeIDs)),
		zap.Int("items", len(items)),
	)

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}
