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

type BookingController struct {
	collection *mongo.Collection
	pub        events.Publisher
}

func NewBookingController(pub events.Publisher) *BookingController {
	collectionName := os.Getenv("MONGODB_COLLECTION_BOOKINGS")
	if collectionName == "" {
		collectionName = "bookings"
	}
	return &BookingController{
		collection: config.GetCollection(collectionName),
		pub:        pub,
	}
}

func (bc *BookingController) CreateBooking(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}
	if !utils.IsValidExternalID(req.PropertyID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	checkIn, err := time.Parse(time.RFC3339, req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid checkIn date"})
	}
	checkOut, err := time.Parse(time.RFC3339, req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid checkOut date"})
	}
	if !checkOut.After(checkIn) {
		return respondError(c, apperr.Validationf("checkOut must be after checkIn"))
	}

	booking := models.Booking{
		ID:            uuid.NewString(),
		PropertyID:    req.PropertyID,
		UserID:        userID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests,
		TotalAmount:   req.TotalAmount,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now(),
	}

	ctx := c.Request().Context()
	if _, err := bc.collection.InsertOne(ctx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create booking"})
	}

	_ = bc.pub.Publish(ctx, "booking.created", map[string]any{
		"booking_id": booking.ID, "property_id": booking.PropertyID, "user_id": userID.Hex(),
	})
	return c.JSON(http.StatusCreated, map[string]interface{}{"booking": booking})
}

func (bc *BookingController) GetBooking(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	id := c.Param("id")

	var booking models.Booking
	err := bc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, apperr.NotFoundf("booking %s not found", id))
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch booking"})
	}
	// Someone else's booking looks the same as a missing one.
	if !booking.OwnedBy(userID) {
		return respondError(c, apperr.NotFoundf("booking %s not found", id))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"booking": booking})
}

func (bc *BookingController) ListBookings(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	ctx := c.Request().Context()
	cursor, err := bc.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch bookings"})
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			continue
		}
		bookings = append(bookings, b)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"bookings": bookings})
}

func (bc *BookingController) Confirm(c echo.Context) error {
	return bc.transition(c, models.BookingConfirmed, "booking.confirmed")
}

func (bc *BookingController) Complete(c echo.Context) error {
	return bc.transition(c, models.BookingCompleted, "booking.completed")
}

func (bc *BookingController) Cancel(c echo.Context) error {
	return bc.transition(c, models.BookingCancelled, "booking.cancelled")
}

func (bc *BookingController) transition(c echo.Context, next models.BookingStatus, eventKey string) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var booking models.Booking
	err := bc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, apperr.NotFoundf("booking %s not found", id))
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch booking"})
	}

	if err := lifecycle.TransitionBooking(&booking, next); err != nil {
		return respondError(c, err)
	}

	update := bson.M{"$set": bson.M{"status": booking.Status}}
	if _, err := bc.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update booking"})
	}

	_ = bc.pub.Publish(ctx, eventKey, map[string]any{"booking_id": booking.ID})
	return c.JSON(http.StatusOK, map[string]interface{}{"booking": booking})
}

func (bc *BookingController) Pay(c echo.Context) error {
	return bc.paymentChange(c, lifecycle.MarkPaid, "booking.paid")
}

func (bc *BookingController) RefundPayment(c echo.Context) error {
	return bc.paymentChange(c, lifecycle.Refund, "booking.refunded")
}

func (bc *BookingController) paymentChange(c echo.Context, apply func(*models.Booking) error, eventKey string) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var booking models.Booking
	err := bc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, apperr.NotFoundf("booking %s not found", id))
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch booking"})
	}

	if err := apply(&booking); err != nil {
		return respondError(c, err)
	}

	update := bson.M{"$set": bson.M{"paymentStatus": booking.PaymentStatus}}
	if _, err := bc.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update booking"})
	}

	_ = bc.pub.Publish(ctx, eventKey, map[string]any{"booking_id": booking.ID})
	return c.JSON(http.StatusOK, map[string]interface{}{"booking": booking})
}
