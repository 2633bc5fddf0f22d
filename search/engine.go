// Package search narrows a catalog with a conjunctive filter. Results
// keep the catalog's original order; there is no relevance ranking.
package search

import (
	"strings"

	"DestinyRealEstate/apperr"
	"DestinyRealEstate/catalog"
	"DestinyRealEstate/models"
)

// Match returns the properties satisfying every present filter field.
// An absent field never excludes a property; an empty filter returns
// the full catalog unchanged. A price range with min > max is a caller
// error and is rejected before any property is evaluated.
func Match(cat *catalog.Catalog, f models.SearchFilters) ([]models.Property, error) {
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		return nil, apperr.Validationf("invalid price range: min %.2f exceeds max %.2f", *f.PriceMin, *f.PriceMax)
	}

	all := cat.All()
	matched := make([]models.Property, 0, len(all))
	for _, p := range all {
		if matches(p, f) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func matches(p models.Property, f models.SearchFilters) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}
	if f.Duration != nil && p.Duration != *f.Duration {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms < *f.Bedrooms {
		return false
	}
	if f.Bathrooms != nil && p.Bathrooms < *f.Bathrooms {
		return false
	}
	for _, a := range f.Amenities {
		if !p.HasAmenity(a) {
			return false
		}
	}
	if f.Verified != nil && p.Verified != *f.Verified {
		return false
	}
	if f.Available != nil && p.Available != *f.Available {
		return false
	}
	return true
}
