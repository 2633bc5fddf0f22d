package handlers

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"DestinyRealEstate/config"
	"DestinyRealEstate/favorites"
	"DestinyRealEstate/models"
	"DestinyRealEstate/utils"
)

type WishlistController struct {
	collection         *mongo.Collection
	propertyCollection *mongo.Collection

	favs     *favorites.Store
	loadedMu sync.Mutex
	loaded   map[string]bool
}

func NewWishlistController() *WishlistController {
	collectionName := os.Getenv("MONGODB_COLLECTION_WISHLIST")
	if collectionName == "" {
		collectionName = "wishlist"
	}
	propertyCollectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if propertyCollectionName == "" {
		propertyCollectionName = "properties"
	}
	return &WishlistController{
		collection:         config.GetCollection(collectionName),
		propertyCollection: config.GetCollection(propertyCollectionName),
		favs:               favorites.NewStore(),
		loaded:             make(map[string]bool),
	}
}

// ensureLoaded hydrates a user's favorite set from storage once per
// process; store adds are idempotent so a concurrent hydration is safe.
func (wc *WishlistController) ensureLoaded(ctx context.Context, userID primitive.ObjectID) error {
	wc.loadedMu.Lock()
	done := wc.loaded[userID.Hex()]
	wc.loadedMu.Unlock()
	if done {
		return nil
	}

	cursor, err := wc.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	for cursor.Next(ctx) {
		var item models.WishlistItem
		if err := cursor.Decode(&item); err != nil {
			continue
		}
		wc.favs.Add(userID.Hex(), item.PropertyID)
	}

	wc.loadedMu.Lock()
	wc.loaded[userID.Hex()] = true
	wc.loadedMu.Unlock()
	return nil
}

// GetWishlist returns the user's saved items with a property snapshot
// embedded in each. A referenced property may have been deleted since
// it was saved; such items come back without a snapshot.
func (wc *WishlistController) GetWishlist(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	ctx := c.Request().Context()
	cursor, err := wc.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch wishlist"})
	}
	defer cursor.Close(ctx)

	items := []models.WishlistItem{}
	for cursor.Next(ctx) {
		var item models.WishlistItem
		if err := cursor.Decode(&item); err != nil {
			continue
		}
		var property models.Property
		if err := wc.propertyCollection.FindOne(ctx, bson.M{"_id": item.PropertyID}).Decode(&property); err == nil {
			item.Property = &property
		}
		items = append(items, item)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"wishlist": items})
}

// AddToWishlist saves the pair. Saving an already-saved property
// returns the existing item rather than an error; the pair is a set.
func (wc *WishlistController) AddToWishlist(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req struct {
		PropertyID string `json:"propertyId"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if !utils.IsValidExternalID(req.PropertyID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	ctx := c.Request().Context()

	var existing models.WishlistItem
	err := wc.collection.FindOne(ctx, bson.M{"userId": userID, "propertyId": req.PropertyID}).Decode(&existing)
	if err == nil {
		return c.JSON(http.StatusCreated, map[string]interface{}{"wishlistItem": existing})
	}

	item := models.WishlistItem{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		PropertyID: req.PropertyID,
		CreatedAt:  time.Now(),
	}
	if _, err := wc.collection.InsertOne(ctx, item); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save to wishlist"})
	}
	wc.favs.Add(userID.Hex(), req.PropertyID)
	return c.JSON(http.StatusCreated, map[string]interface{}{"wishlistItem": item})
}

// Toggle flips membership for the pair and reports the resulting state.
func (wc *WishlistController) Toggle(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req struct {
		PropertyID string `json:"propertyId"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if !utils.IsValidExternalID(req.PropertyID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	ctx := c.Request().Context()
	if err := wc.ensureLoaded(ctx, userID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load wishlist"})
	}

	favorited := wc.favs.Toggle(userID.Hex(), req.PropertyID)
	if favorited {
		item := models.WishlistItem{
			ID:         primitive.NewObjectID(),
			UserID:     userID,
			PropertyID: req.PropertyID,
			CreatedAt:  time.Now(),
		}
		if _, err := wc.collection.InsertOne(ctx, item); err != nil {
			wc.favs.Remove(userID.Hex(), req.PropertyID)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save to wishlist"})
		}
	} else {
		if _, err := wc.collection.DeleteOne(ctx, bson.M{"userId": userID, "propertyId": req.PropertyID}); err != nil {
			wc.favs.Add(userID.Hex(), req.PropertyID)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove from wishlist"})
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"favorited": favorited})
}

// RemoveFromWishlist deletes the pair. Removal is idempotent; an absent
// pair still succeeds.
func (wc *WishlistController) RemoveFromWishlist(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	propertyID := c.Param("propertyId")
	if !utils.IsValidExternalID(propertyID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	_, err := wc.collection.DeleteOne(c.Request().Context(), bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove from wishlist"})
	}
	wc.favs.Remove(userID.Hex(), propertyID)
	return c.JSON(http.StatusOK, map[string]string{"message": "Removed from wishlist"})
}
