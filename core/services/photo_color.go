// ABOUTME: Photo color service extracts the prominent color from restaurant photos
// ABOUTME: Uses K-means clustering and memoizes colors per image URL for a day

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mealmap-api/core/cache"
	"mealmap-api/core/domain"
	"mealmap-api/core/interfaces"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support
)

const (
	defaultColorValue = 128
	photoHTTPTimeout  = 10 * time.Second
	photoUserAgent    = "Mozilla/5.0 (compatible; MealMap/1.0)"
)

// PhotoColorService handles color extraction from venue photos. The UI
// uses the color to theme cards and map pins.
type PhotoColorService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
}

// NewPhotoColorService creates a new photo color service. Image bytes
// are downloaded with a dedicated client since the shared HTTPClient
// abstraction targets JSON APIs.
func NewPhotoColorService(deps interfaces.Dependencies) *PhotoColorService {
	return &PhotoColorService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: photoHTTPTimeout,
		},
	}
}

// ExtractColor extracts the prominent color from an image URL. Returns
// a neutral default color instead of an error when extraction fails, so
// the UI always has something to theme with.
func (s *PhotoColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.defaultColor(), nil
	}

	if s.deps.Cache != nil {
		if v, ok := s.deps.Cache.Get(cache.PhotoColor, imageURL); ok {
			if cached, ok := v.(*domain.RGBColor); ok {
				return cached, nil
			}
		}
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Failed to extract photo color", map[string]interface{}{
				"url":   imageURL,
				"error": err.Error(),
			})
		}
		color = s.defaultColor()
	}

	if s.deps.Cache != nil {
		s.deps.Cache.Put(cache.PhotoColor, imageURL, color)
	}
	return color, nil
}

// extractColorFromURL downloads and extracts color from an image.
func (s *PhotoColorService) extractColorFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	// prominentcolor panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			color = nil
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG can't be decoded as a raster image.
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", photoUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		prominentcolor.DefaultSize,
		prominentcolor.GetDefaultMasks(),
	)
	if err != nil || len(colors) == 0 {
		// Retry without background masks; photos of food often fill the
		// whole frame.
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentNoCropping,
			imgNRGBA,
			prominentcolor.DefaultK,
			prominentcolor.DefaultSize,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("color extraction failed: %w", err)
		}
	}

	if len(colors) == 0 {
		return nil, fmt.Errorf("no prominent colors found")
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

func (s *PhotoColorService) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{R: defaultColorValue, G: defaultColorValue, B: defaultColorValue}
}
