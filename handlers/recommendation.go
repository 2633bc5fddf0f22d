package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"DestinyRealEstate/config"
	"DestinyRealEstate/models"
	"DestinyRealEstate/utils"
)

type RecommendationController struct {
	collection     *mongo.Collection
	userCollection *mongo.Collection
}

func NewRecommendationController() *RecommendationController {
	collectionName := os.Getenv("MONGODB_COLLECTION_RECOMMENDATIONS")
	if collectionName == "" {
		collectionName = "recommendations"
	}
	userCollectionName := os.Getenv("MONGODB_COLLECTION_USER")
	if userCollectionName == "" {
		userCollectionName = "user"
	}
	return &RecommendationController{
		collection:     config.GetCollection(collectionName),
		userCollection: config.GetCollection(userCollectionName),
	}
}

// CreateRecommendation shares a listing with another registered user,
// addressed by email.
func (rc *RecommendationController) CreateRecommendation(c echo.Context) error {
	recommenderID := c.Get("user_id").(primitive.ObjectID)

	var req models.CreateRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}
	if !utils.IsValidExternalID(req.PropertyID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	ctx := c.Request().Context()

	var recipient models.User
	err := rc.userCollection.FindOne(ctx, bson.M{"email": req.RecipientEmail}).Decode(&recipient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Recipient not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to find recipient"})
	}

	recommendation := models.Recommendation{
		ID:            primitive.NewObjectID(),
		RecommenderID: recommenderID,
		RecipientID:   recipient.ID,
		PropertyID:    req.PropertyID,
		Message:       req.Message,
		CreatedAt:     time.Now(),
	}
	if _, err := rc.collection.InsertOne(ctx, recommendation); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create recommendation"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"recommendation": recommendation})
}

func (rc *RecommendationController) GetReceivedRecommendations(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	ctx := c.Request().Context()
	cursor, err := rc.collection.Find(ctx, bson.M{"recipientId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch recommendations"})
	}
	defer cursor.Close(ctx)

	recommendations := []models.Recommendation{}
	for cursor.Next(ctx) {
		var rec models.Recommendation
		if err := cursor.Decode(&rec); err != nil {
			continue
		}
		recommendations = append(recommendations, rec)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"recommendations": recommendations})
}
