package importer

import (
	"context"
	"fmt"
	"strings"

	"pantry-planner/internal/core/recipe"
	"pantry-planner/internal/infrastructure/config"
	"pantry-planner/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Document is the recipe interchange format accepted by the importer.
// Ingredients may arrive either as a list of lines or as one raw text
// blob in the stored format.
type Document struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Description     string   `json:"description"`
	PrepTimeMinutes int      `json:"prep_time_minutes"`
	CookTimeMinutes int      `json:"cook_time_minutes"`
	Ingredients     []string `json:"ingredients"`
	IngredientsText string   `json:"ingredients_text"`
	Steps           string   `json:"steps"`
	Tags            []string `json:"tags"`
}

// Service fetches recipe documents from remote URLs and stores them.
type Service struct {
	client  *resty.Client
	recipes *recipe.Service
	maxBody int64
}

// NewService creates an importer with timeouts and retries from config.
func NewService(cfg *config.ImportConfig, recipes *recipe.Service) *Service {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "pantry-planner/1.0")

	return &Service{
		client:  client,
		recipes: recipes,
		maxBody: cfg.MaxBodyBytes,
	}
}

// Import fetches the document at url, validates it and creates a recipe.
func (s *Service) Import(ctx context.Context, url string) (*recipe.Recipe, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, common.NewValidationError("import url must be http or https")
	}

	var doc Document
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&doc).
		Get(url)
	if err != nil {
		common.LogError("recipe import fetch failed",
			zap.Error(err),
			zap.String("url", url),
		)
		return nil, fmt.Errorf("fetching recipe document: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching recipe document: status %d", resp.StatusCode())
	}
	if s.maxBody > 0 && resp.Size() > s.maxBody {
		return nil, common.NewValidationError("recipe document too large")
	}

	if strings.TrimSpace(doc.Title) == "" {
		return nil, common.NewValidationError("recipe document has no title")
	}

	ingredients := doc.IngredientsText
	if len(doc.Ingredients) > 0 {
		ingredients = strings.Join(doc.Ingredients, "\n")
	}

	created, err := s.recipes.Create(recipe.CreateInput{
		Title:           doc.Title,
		Author:          doc.Author,
		Description:     doc.Description,
		PrepTimeMinutes: doc.PrepTimeMinutes,
		CookTimeMinutes: doc.CookTimeMinutes,
		Ingredients:     ingredients,
		Steps:           doc.Steps,
		Tags:            strings.Join(doc.Tags, ","),
	})
	if err != nil {
		return nil, err
	}

	common.LogInfo("recipe imported",
		zap.String("recipe_id", created.ID),
		zap.String("url", url),
		zap.String("title", created.Title),
	)
	return created, nil
}
