// ABOUTME: Nutrition service looks up nutrition facts by restaurant or menu-item name
// ABOUTME: Lookups are memoized under a case-normalized key for an hour

package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"mealmap-api/core/cache"
	"mealmap-api/core/domain"
	coreerrors "mealmap-api/core/errors"
	"mealmap-api/core/interfaces"
)

const maxNameLength = 100

// NutritionService handles nutrition lookups against the nutrition API.
type NutritionService struct {
	deps   interfaces.Dependencies
	apiURL string
}

// NewNutritionService creates a new nutrition service. apiURL is the
// nutrition API base URL.
func NewNutritionService(deps interfaces.Dependencies, apiURL string) *NutritionService {
	return &NutritionService{
		deps:   deps,
		apiURL: apiURL,
	}
}

// validateName validates a lookup name.
func (s *NutritionService) validateName(name string) error {
	if name == "" {
		return &coreerrors.ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if len(name) > maxNameLength {
		return &coreerrors.ValidationError{Field: "name", Message: fmt.Sprintf("cannot exceed %d characters", maxNameLength)}
	}
	return nil
}

// Lookup returns the nutrition facts matching a food or restaurant
// name. The name is trimmed and case-normalized before it is used as a
// cache key, so "Subway" and " subway " share one entry.
func (s *NutritionService) Lookup(ctx context.Context, name string) ([]domain.Nutrition, error) {
	key := cache.NormalizeKey(name)
	if err := s.validateName(key); err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		if v, ok := s.deps.Cache.Get(cache.NutritionByName, key); ok {
			if cached, ok := v.([]domain.Nutrition); ok {
				return cached, nil
			}
		}
	}

	results, err := s.fetch(ctx, key)
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil && len(results) > 0 {
		s.deps.Cache.Put(cache.NutritionByName, key, results)
	}
	return results, nil
}

// nutritionResponse mirrors the nutrition API's item list.
type nutritionResponse struct {
	Items []struct {
		Name        string  `json:"name"`
		Brand       string  `json:"brand_name"`
		ServingSize string  `json:"serving_size"`
		Calories    float64 `json:"calories"`
		Protein     float64 `json:"protein_g"`
		Carbs       float64 `json:"carbohydrates_total_g"`
		Fat         float64 `json:"fat_total_g"`
		Sodium      float64 `json:"sodium_mg"`
	} `json:"items"`
}

func (s *NutritionService) fetch(ctx context.Context, name string) ([]domain.Nutrition, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	requestURL := fmt.Sprintf("%s/nutrition?query=%s", s.apiURL, url.QueryEscape(name))
	resp, err := s.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to query nutrition API: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "nutrition",
			StatusCode: resp.StatusCode(),
			Message:    "nutrition lookup failed",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}

	var parsed nutritionResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition response: %w", err)
	}

	results := make([]domain.Nutrition, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		results = append(results, domain.Nutrition{
			Name:             item.Name,
			Brand:            item.Brand,
			ServingSize:      item.ServingSize,
			Calories:         item.Calories,
			ProteinGrams:     item.Protein,
			CarbsGrams:       item.Carbs,
			FatGrams:         item.Fat,
			SodiumMilligrams: item.Sodium,
		})
	}
	return results, nil
}
