// ABOUTME: Site metadata service extracts Open Graph preview data from restaurant websites
// ABOUTME: Parses meta tags with goquery and memoizes results per URL for a day

package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mealmap-api/core/cache"
	"mealmap-api/core/domain"
	coreerrors "mealmap-api/core/errors"
	"mealmap-api/core/interfaces"
	"mealmap-api/pkg/utils/text"

	"github.com/PuerkitoBio/goquery"
)

// batchConcurrency caps the parallel page fetches in a batch call.
const batchConcurrency = 10

// SiteMetadataService handles metadata extraction from restaurant
// websites.
type SiteMetadataService struct {
	deps interfaces.Dependencies
}

// NewSiteMetadataService creates a new site metadata service.
func NewSiteMetadataService(deps interfaces.Dependencies) *SiteMetadataService {
	return &SiteMetadataService{
		deps: deps,
	}
}

// ExtractMetadata extracts preview metadata from a single website URL.
func (s *SiteMetadataService) ExtractMetadata(ctx context.Context, siteURL string) (*domain.SiteMetadata, error) {
	if siteURL == "" || !strings.HasPrefix(siteURL, "http") {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "must be an absolute http(s) URL"}
	}

	if s.deps.Cache != nil {
		if v, ok := s.deps.Cache.Get(cache.SiteMetadata, siteURL); ok {
			if cached, ok := v.(*domain.SiteMetadata); ok {
				return cached, nil
			}
		}
	}

	result, err := s.extractFromURL(ctx, siteURL)
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		s.deps.Cache.Put(cache.SiteMetadata, siteURL, result)
	}
	return result, nil
}

// ExtractMetadataBatch extracts metadata for multiple URLs
// concurrently. URLs that fail are omitted from the result map.
func (s *SiteMetadataService) ExtractMetadataBatch(ctx context.Context, urls []string) map[string]*domain.SiteMetadata {
	results := make(map[string]*domain.SiteMetadata)
	var mu sync.Mutex
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, batchConcurrency)

	for _, u := range urls {
		wg.Add(1)
		go func(siteURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if result, err := s.ExtractMetadata(ctx, siteURL); err == nil && result != nil {
				mu.Lock()
				results[siteURL] = result
				mu.Unlock()
			}
		}(u)
	}

	wg.Wait()
	return results
}

// extractFromURL fetches the page and pulls preview fields out of its
// meta tags.
func (s *SiteMetadataService) extractFromURL(ctx context.Context, siteURL string) (*domain.SiteMetadata, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, siteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch site: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "website",
			StatusCode: resp.StatusCode(),
			Message:    "site fetch failed",
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to parse site HTML: %w", err)
	}

	result := &domain.SiteMetadata{SiteURL: siteURL}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		content, _ := sel.Attr("content")
		if content == "" {
			return
		}
		property, _ := sel.Attr("property")
		name, _ := sel.Attr("name")

		switch property {
		case "og:title":
			if result.Title == "" {
				result.Title = content
			}
		case "og:description":
			if result.Description == "" {
				result.Description = content
			}
		case "og:image":
			if result.Image == "" {
				result.Image = content
			}
		}

		switch name {
		case "description":
			if result.Description == "" {
				result.Description = content
			}
		case "theme-color":
			result.ThemeColor = content
		case "twitter:image":
			if result.Image == "" {
				result.Image = content
			}
		}
	})

	if result.Title == "" {
		result.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if href, ok := doc.Find(`link[rel="icon"], link[rel="shortcut icon"]`).First().Attr("href"); ok {
		result.Favicon = href
	}

	// Real sites ship markup fragments and entities inside meta content.
	result.Title = text.Clean(result.Title)
	result.Description = text.CleanDescription(result.Description)

	return result, nil
}
