package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"DestinyRealEstate/apperr"
	"DestinyRealEstate/config"
	"DestinyRealEstate/events"
	"DestinyRealEstate/lifecycle"
	"DestinyRealEstate/models"
	"DestinyRealEstate/utils"
)

type AgreementController struct {
	collection *mongo.Collection
	pub        events.Publisher
}

func NewAgreementController(pub events.Publisher) *AgreementController {
	collectionName := os.Getenv("MONGODB_COLLECTION_AGREEMENTS")
	if collectionName == "" {
		collectionName = "agreements"
	}
	return &AgreementController{
		collection: config.GetCollection(collectionName),
		pub:        pub,
	}
}

func (ac *AgreementController) CreateAgreement(c echo.Context) error {
	tenantID := c.Get("user_id").(primitive.ObjectID)

	var req models.CreateAgreementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}
	if !utils.IsValidExternalID(req.PropertyID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}
	landlordID, err := primitive.ObjectIDFromHex(req.LandlordID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid landlord ID"})
	}
	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid startDate"})
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid endDate"})
	}
	if !end.After(start) {
		return respondError(c, apperr.Validationf("endDate must be after startDate"))
	}

	now := time.Now()
	agreement := models.RentalAgreement{
		ID:              uuid.NewString(),
		PropertyID:      req.PropertyID,
		TenantID:        tenantID,
		LandlordID:      landlordID,
		StartDate:       start,
		EndDate:         end,
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		Status:          models.AgreementDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	ctx := c.Request().Context()
	if _, err := ac.collection.InsertOne(ctx, agreement); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create agreement"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"agreement": agreement})
}

func (ac *AgreementController) GetAgreement(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	id := c.Param("id")

	var agreement models.RentalAgreement
	err := ac.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&agreement)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, apperr.NotFoundf("agreement %s not found", id))
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch agreement"})
	}
	// An agreement the caller is no party to looks the same as a
	// missing one.
	if !agreement.PartyTo(userID) {
		return respondError(c, apperr.NotFoundf("agreement %s not found", id))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"agreement": agreement})
}

// Sign records the signing timestamp; a repeated sign keeps the first
// timestamp and still succeeds.
func (ac *AgreementController) Sign(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var agreement models.RentalAgreement
	err := ac.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&agreement)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, apperr.NotFoundf("agreement %s not found", id))
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch agreement"})
	}

	lifecycle.SignAgreement(&agreement, time.Now())

	update := bson.M{"$set": bson.M{"signedAt": agreement.SignedAt, "updatedAt": time.Now()}}
	if _, err := ac.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update agreement"})
	}

	_ = ac.pub.Publish(ctx, "agreement.signed", map[string]any{"agreement_id": agreement.ID})
	return c.JSON(http.StatusOK, map[string]interface{}{"agreement": agreement})
}

func (ac *AgreementController) Submit(c echo.Context) error {
	return ac.transition(c, models.AgreementPending, "agreement.submitted")
}

func (ac *AgreementController) Activate(c echo.Context) error {
	return ac.transition(c, models.AgreementActive, "agreement.activated")
}

func (ac *AgreementController) Complete(c echo.Context) error {
	return ac.transition(c, models.AgreementCompleted, "agreement.completed")
}

func (ac *AgreementController) Cancel(c echo.Context) error {
	return ac.transition(c, models.AgreementCancelled, "agreement.cancelled")
}

func (ac *AgreementController) transition(c echo.Context, next models.AgreementStatus, eventKey string) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var agreement models.RentalAgreement
	err := ac.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&agreement)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, apperr.NotFoundf("agreement %s not found", id))
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch agreement"})
	}

	if err := lifecycle.TransitionAgreement(&agreement, next); err != nil {
		return respondError(c, err)
	}

	update := bson.M{"$set": bson.M{"status": agreement.Status, "updatedAt": time.Now()}}
	if _, err := ac.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update agreement"})
	}

	_ = ac.pub.Publish(ctx, eventKey, map[string]any{"agreement_id": agreement.ID})
	return c.JSON(http.StatusOK, map[string]interface{}{"agreement": agreement})
}
