// ABOUTME: SiteMetadata domain model for restaurant website previews
// ABOUTME: Holds Open Graph fields extracted from a venue's homepage

package domain

// SiteMetadata contains preview metadata extracted from a restaurant's
// website.
type SiteMetadata struct {
	// Title is the page title (og:title, falling back to <title>)
	Title string `json:"title,omitempty"`

	// Description is the page description (og:description or meta description)
	Description string `json:"description,omitempty"`

	// Image is the primary preview image URL
	Image string `json:"image,omitempty"`

	// ThemeColor is the site's declared theme color, when present
	ThemeColor string `json:"theme_color,omitempty"`

	// Favicon is the site icon URL, when present
	Favicon string `json:"favicon,omitempty"`

	// SiteURL is the URL the metadata was extracted from
	SiteURL string `json:"site_url"`
}
