package search

import (
	"net/url"
	"strconv"
	"strings"

	"DestinyRealEstate/apperr"
	"DestinyRealEstate/models"
)

// FiltersFromQuery builds SearchFilters from request query parameters.
// Unparseable numeric or boolean values are a caller error rather than
// a silently dropped constraint.
func FiltersFromQuery(q url.Values) (models.SearchFilters, error) {
	var f models.SearchFilters

	f.Location = q.Get("location")
	f.Category = q.Get("category")

	if v := q.Get("price_min"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, apperr.Validationf("invalid price_min %q", v)
		}
		f.PriceMin = &min
	}
	if v := q.Get("price_max"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, apperr.Validationf("invalid price_max %q", v)
		}
		f.PriceMax = &max
	}
	if v := q.Get("duration"); v != "" {
		d, err := models.ParseDurationUnit(v)
		if err != nil {
			return f, apperr.Validationf("invalid duration %q", v)
		}
		f.Duration = &d
	}
	if v := q.Get("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, apperr.Validationf("invalid bedrooms %q", v)
		}
		f.Bedrooms = &n
	}
	if v := q.Get("bathrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, apperr.Validationf("invalid bathrooms %q", v)
		}
		f.Bathrooms = &n
	}
	if v := q.Get("amenities"); v != "" {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				f.Amenities = append(f.Amenities, a)
			}
		}
	}
	if v := q.Get("verified"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, apperr.Validationf("invalid verified %q", v)
		}
		f.Verified = &b
	}
	if v := q.Get("available"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, apperr.Validationf("invalid available %q", v)
		}
		f.Available = &b
	}
	return f, nil
}
