// ABOUTME: Nutrition domain model for menu-item lookups
// ABOUTME: Values mirror the fields the nutrition source reports per item

package domain

// Nutrition holds the nutrition facts for one menu item or food name.
type Nutrition struct {
	// Name is the food or menu-item name as the source reports it
	Name string `json:"name"`

	// Brand is the restaurant or brand the item belongs to, if any
	Brand string `json:"brand,omitempty"`

	// ServingSize is the source's serving description (e.g., "1 sandwich")
	ServingSize string `json:"serving_size,omitempty"`

	// Calories per serving
	Calories float64 `json:"calories"`

	// Macronutrients in grams per serving
	ProteinGrams float64 `json:"protein_g"`
	CarbsGrams   float64 `json:"carbs_g"`
	FatGrams     float64 `json:"fat_g"`

	// SodiumMilligrams per serving
	SodiumMilligrams float64 `json:"sodium_mg"`
}
