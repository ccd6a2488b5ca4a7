package recipe

import (
	"net/http"

	"pantry-planner/internal/core/importer"
	recipeService "pantry-planner/internal/core/recipe"
	"pantry-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeRequest carries the writable recipe fields of create and update
// requests.
type RecipeRequest struct {
	Title           string `json:"title" binding:"required"`
	Author          string `json:"author,omitempty"`
	Description     string `json:"description,omitempty"`
	PrepTimeMinutes int    `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes int    `json:"cook_time_minutes,omitempty"`
	Ingredients     string `json:"ingredients,omitempty"`
	Steps           string `json:"steps" binding:"required"`
	Tags            string `json:"tags,omitempty"`
}

// Handler serves recipe CRUD, import and shopping-list requests.
type Handler struct {
	recipes  *recipeService.Service
	importer *importer.Service
}

// NewHandler creates a recipe handler.
func NewHandler(recipes *recipeService.Service, imp *importer.Service) *Handler {
	return &Handler{
		recipes:  recipes,
		importer: imp,
	}
}

// HandleCreate creates a recipe.
func (h *Handler) HandleCreate(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("invalid recipe payload",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": common.ErrCodeInvalidRequest})
		return
	}

	created, err := h.recipes.Create(toInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// HandleGet fetches one recipe.
func (h *Handler) HandleGet(c *gin.Context) {
	r, err := h.recipes.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// HandleList lists all recipes.
func (h *Handler) HandleList(c *gin.Context) {
	recipes, err := h.recipes.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

// HandleUpdate replaces the writable fields of a recipe.
func (h *Handler) HandleUpdate(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("invalid recipe payload",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": common.ErrCodeInvalidRequest})
		return
	}

	updated, err := h.recipes.Update(c.Param("id"), toInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// HandleDelete removes a recipe.
func (h *Handler) HandleDelete(c *gin.Context) {
	if err := h.recipes.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportRequest asks for a recipe document to be fetched from a URL.
type ImportRequest struct {
	URL string `json:"url" binding:"required"`
}

// HandleImport fetches and stores a remote recipe document.
func (h *Handler) HandleImport(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": common.ErrCodeInvalidRequest})
		return
	}

	common.LogInfo("recipe import requested",
		zap.String("request_id", requestID),
		zap.String("url", req.URL),
	)

	created, err := h.importer.Import(c.Request.Context(), req.URL)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": common.ErrCodeInvalidRequest})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "code": common.ErrCodeBadGateway})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func toInput(req RecipeRequest) recipeService.CreateInput {
	return recipeService.CreateInput{
		Title:           req.Title,
		Author:          req.Author,
		Description:     req.Description,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Ingredients:     req.Ingredients,
		Steps:           req.Steps,
		Tags:            req.Tags,
	}
}

func respondError(c *gin.Context, err error) {
	switch {
	case common.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": common.ErrCodeInvalidRequest})
	case err == recipeService.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": common.ErrCodeNotFound})
	default:
		common.LogError("recipe request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": common.ErrCodeInternalError})
	}
}

func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}
