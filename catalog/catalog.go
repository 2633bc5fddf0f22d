// Package catalog holds the readable collection of Property records.
// A Catalog is immutable once built; refreshing means re-fetching from
// the data service and constructing a new one, never patching in place.
package catalog

import (
	"DestinyRealEstate/apperr"
	"DestinyRealEstate/models"
)

type Catalog struct {
	props []models.Property
	index map[string]int
}

// New builds a catalog preserving the given order. Duplicate IDs and
// out-of-range ratings are rejected up front.
func New(props []models.Property) (*Catalog, error) {
	c := &Catalog{
		props: make([]models.Property, len(props)),
		index: make(map[string]int, len(props)),
	}
	copy(c.props, props)
	for i, p := range c.props {
		if _, dup := c.index[p.ExternalID]; dup {
			return nil, apperr.Validationf("duplicate property id %s", p.ExternalID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, apperr.Validationf("property %s: rating %.1f out of range", p.ExternalID, p.Rating)
		}
		c.index[p.ExternalID] = i
	}
	return c, nil
}

// All returns the properties in insertion order. The slice is a copy;
// callers may reorder it freely.
func (c *Catalog) All() []models.Property {
	out := make([]models.Property, len(c.props))
	copy(out, c.props)
	return out
}

func (c *Catalog) ByID(id string) (models.Property, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Property{}, apperr.NotFoundf("property %s not found", id)
	}
	return c.props[i], nil
}

func (c *Catalog) Len() int { return len(c.props) }
