package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nutricheck/backend/internal/logger"
	"github.com/nutricheck/backend/internal/recipegen"
)

// MaxRecipeCount caps how many recipes one request may ask for.
const MaxRecipeCount = 10

// SuggestionResult is the parsed outcome of one generation request.
type SuggestionResult struct {
	Recipes []recipegen.Recipe
	Skipped []recipegen.ChunkResult
}

// RecipeOptions tunes RecipeService.
type RecipeOptions struct {
	DefaultCount          int
	MultilineInstructions bool
}

// RecipeService runs the prompt, generate, parse pipeline.
type RecipeService struct {
	generator    RecipeGenerator
	defaultCount int
	parseOpts    []recipegen.ParseOption
	parseReply   func(string, ...recipegen.ParseOption) recipegen.Result
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(generator RecipeGenerator, opts RecipeOptions) *RecipeService {
	s := &RecipeService{
		generator:    generator,
		defaultCount: opts.DefaultCount,
		parseReply:   recipegen.ParseDetailed,
	}
	if s.defaultCount <= 0 {
		s.defaultCount = recipegen.DefaultRecipeCount
	}
	if opts.MultilineInstructions {
		s.parseOpts = append(s.parseOpts, recipegen.WithMultilineInstructions())
	}
	return s
}

// Suggest asks the generator for count recipes using ingredients. Errors are one of
// ErrNoIngredients, ErrGenerationFailed, ErrFormattingFailed or ErrNoRecipesProduced.
func (s *RecipeService) Suggest(ctx context.Context, ingredients []string, count int) (*SuggestionResult, error) {
	cleaned := cleanIngredients(ingredients)
	if len(cleaned) == 0 {
		return nil, ErrNoIngredients
	}

	if count <= 0 {
		count = s.defaultCount
	}
	if count > MaxRecipeCount {
		count = MaxRecipeCount
	}

	prompt := recipegen.BuildPrompt(cleaned, count)
	logger.Debug("recipe prompt built", zap.Strings("ingredients", cleaned), zap.Int("count", count))

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.Error("recipe generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	result, err := s.parse(raw)
	if err != nil {
		logger.Error("recipe formatting failed", zap.Error(err), zap.Int("reply_length", len(raw)))
		return nil, err
	}

	for _, chunk := range result.Skipped() {
		logger.Debug("recipe chunk skipped",
			zap.Int("chunk", chunk.Index),
			zap.String("reason", string(chunk.Skip)),
		)
	}

	recipes := result.Recipes()
	if len(recipes) == 0 {
		logger.Warn("reply contained no usable recipes",
			zap.Int("chunks", len(result.Chunks)),
			zap.Int("reply_length", len(raw)),
		)
		return nil, ErrNoRecipesProduced
	}

	return &SuggestionResult{
		Recipes: recipes,
		Skipped: result.Skipped(),
	}, nil
}

// parse never sees an error from the parser itself; it turns an unexpected panic
// into ErrFormattingFailed so it cannot take the request down.
func (s *RecipeService) parse(raw string) (result recipegen.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFormattingFailed, r)
		}
	}()
	return s.parseReply(raw, s.parseOpts...), nil
}

func cleanIngredients(ingredients []string) []string {
	cleaned := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			cleaned = append(cleaned, ing)
		}
	}
	return cleaned
}
