// Package core contains the business logic for the MealMap API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Restaurant, Nutrition, SavedPlace, etc.)
// - cache: Namespaced TTL cache for external API lookups
// - restaurants: Nearby-restaurant lookups against a geodata API
// - nutrition: Nutrition facts lookups by food name
// - search: Free-text place search
// - services: Website metadata and photo color extraction
// - places: Saved place management
// - workers: Background cache pre-warming
// - geo: Coordinate distance helpers
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger, storage)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "mealmap-api/core/cache"
//	    "mealmap-api/core/interfaces"
//	    "mealmap-api/core/restaurants"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      cache.New(5*time.Minute, cache.Defaults(0)...),
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	service := restaurants.NewRestaurantService(deps, overpassURL)
//
//	// Look up restaurants near a coordinate
//	results, err := service.Nearby(ctx, 37.7749, -122.4194, 5000)
package core
