package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"DestinyRealEstate/catalog"
	"DestinyRealEstate/config"
	"DestinyRealEstate/models"
	"DestinyRealEstate/search"
	"DestinyRealEstate/utils"
)

const listCacheTTL = 2 * time.Minute

type PropertyController struct {
	collection *mongo.Collection
}

func NewPropertyController() *PropertyController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	return &PropertyController{
		collection: config.GetCollection(collectionName),
	}
}

// loadCatalog pulls all properties in insertion order and wraps them in
// a fresh catalog. Updates reach clients through this re-fetch rather
// than by patching any cached copy.
func (pc *PropertyController) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cursor, err := pc.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var props []models.Property
	for cursor.Next(ctx) {
		var p models.Property
		if err := cursor.Decode(&p); err != nil {
			continue
		}
		props = append(props, p)
	}
	return catalog.New(props)
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	filters, err := search.FiltersFromQuery(c.QueryParams())
	if err != nil {
		return respondError(c, err)
	}

	ctx := c.Request().Context()

	params := map[string]string{}
	for k, v := range c.QueryParams() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	cacheKey := utils.GenerateQueryCacheKey("properties", params)

	var cached []models.Property
	if hit, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && hit {
		return c.JSON(http.StatusOK, map[string]interface{}{"properties": cached})
	}

	cat, err := pc.loadCatalog(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	matched, err := search.Match(cat, filters)
	if err != nil {
		return respondError(c, err)
	}

	_ = utils.SetCached(ctx, cacheKey, matched, listCacheTTL)

	return c.JSON(http.StatusOK, map[string]interface{}{"properties": matched})
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id := c.Param("id")
	if !utils.IsValidExternalID(id) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}
	var property models.Property
	err := pc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"property": property})
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req models.CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}
	duration, err := models.ParseDurationUnit(req.Duration)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid duration"})
	}

	ctx := c.Request().Context()

	count, err := pc.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}

	now := time.Now()
	property := models.Property{
		ExternalID: fmt.Sprintf("PROP%d", 1001+count),
		Title:      req.Title,
		Location:   req.Location,
		Price:      req.Price,
		Duration:   duration,
		Category:   req.Category,
		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
		Guests:     req.Guests,
		Amenities:  req.Amenities,
		Features:   req.Features,
		Images:     req.Images,
		Available:  true,
		Landlord:   req.Landlord,
		CreatedBy:  &userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := pc.collection.InsertOne(ctx, property); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"property": property})
}
