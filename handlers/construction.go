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

type ConstructionController struct {
	collection *mongo.Collection
	pub        events.Publisher
}

func NewConstructionController(pub events.Publisher) *ConstructionController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROJECTS")
	if collectionName == "" {
		collectionName = "construction_projects"
	}
	return &ConstructionController{
		collection: config.GetCollection(collectionName),
		pub:        pub,
	}
}

func (cc *ConstructionController) ListProjects(c echo.Context) error {
	ctx := c.Request().Context()
	cursor, err := cc.collection.Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch projects"})
	}
	defer cursor.Close(ctx)

	projects := []models.ConstructionProject{}
	for cursor.Next(ctx) {
		var p models.ConstructionProject
		if err := cursor.Decode(&p); err != nil {
			continue
		}
		projects = append(projects, p)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"projects": projects})
}

func (cc *ConstructionController) CreateProject(c echo.Context) error {
	clientID := c.Get("user_id").(primitive.ObjectID)

	var req models.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}

	now := time.Now()
	project := models.ConstructionProject{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Location:    req.Location,
		ClientID:    clientID,
		Status:      models.ProjectPlanning,
		Milestones:  []models.Milestone{},
		Materials:   []models.Material{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx := c.Request().Context()
	if _, err := cc.collection.InsertOne(ctx, project); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create project"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"project": project})
}

func (cc *ConstructionController) GetProject(c echo.Context) error {
	project, err := cc.load(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"project": project})
}

func (cc *ConstructionController) OpenBidding(c echo.Context) error {
	return cc.transition(c, models.ProjectBidding, "project.bidding")
}

func (cc *ConstructionController) Start(c echo.Context) error {
	return cc.transition(c, models.ProjectInProgress, "project.started")
}

func (cc *ConstructionController) Complete(c echo.Context) error {
	return cc.transition(c, models.ProjectCompleted, "project.completed")
}

func (cc *ConstructionController) Cancel(c echo.Context) error {
	return cc.transition(c, models.ProjectCancelled, "project.cancelled")
}

func (cc *ConstructionController) AddMilestone(c echo.Context) error {
	var req models.AddMilestoneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}
	due, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid dueDate"})
	}

	project, err := cc.load(c)
	if err != nil {
		return respondError(c, err)
	}

	milestone := models.Milestone{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     due,
	}
	project.Milestones = append(project.Milestones, milestone)

	if err := cc.save(c, project); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update project"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"milestone": milestone})
}

// CompleteMilestone is idempotent: re-completing a finished milestone
// returns it unchanged with its original timestamp.
func (cc *ConstructionController) CompleteMilestone(c echo.Context) error {
	project, err := cc.load(c)
	if err != nil {
		return respondError(c, err)
	}

	changed, err := lifecycle.CompleteMilestone(project, c.Param("milestoneId"), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	if changed {
		if err := cc.save(c, project); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update project"})
		}
		_ = cc.pub.Publish(c.Request().Context(), "project.milestone.completed", map[string]any{
			"project_id": project.ID, "milestone_id": c.Param("milestoneId"),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"project": project})
}

func (cc *ConstructionController) AddMaterial(c echo.Context) error {
	var req models.AddMaterialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return respondError(c, err)
	}

	project, err := cc.load(c)
	if err != nil {
		return respondError(c, err)
	}

	material := models.Material{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		UnitPrice: req.UnitPrice,
		Supplier:  req.Supplier,
		Status:    models.MaterialPending,
	}
	project.Materials = append(project.Materials, material)

	if err := cc.save(c, project); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update project"})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{"material": material})
}

func (cc *ConstructionController) SetMaterialStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	next := models.MaterialStatus(req.Status)
	switch next {
	case models.MaterialOrdered, models.MaterialDelivered:
	default:
		return respondError(c, apperr.Validationf("invalid material status %q", req.Status))
	}

	project, err := cc.load(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := lifecycle.SetMaterialStatus(project, c.Param("materialId"), next); err != nil {
		return respondError(c, err)
	}
	if err := cc.save(c, project); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update project"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"project": project})
}

func (cc *ConstructionController) transition(c echo.Context, next models.ProjectStatus, eventKey string) error {
	project, err := cc.load(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := lifecycle.TransitionProject(project, next); err != nil {
		return respondError(c, err)
	}
	if err := cc.save(c, project); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update project"})
	}

	_ = cc.pub.Publish(c.Request().Context(), eventKey, map[string]any{"project_id": project.ID})
	return c.JSON(http.StatusOK, map[string]interface{}{"project": project})
}

func (cc *ConstructionController) load(c echo.Context) (*models.ConstructionProject, error) {
	id := c.Param("id")
	var project models.ConstructionProject
	err := cc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("project %s not found", id)
		}
		return nil, err
	}
	return &project, nil
}

func (cc *ConstructionController) save(c echo.Context, project *models.ConstructionProject) error {
	project.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"status":     project.Status,
		"milestones": project.Milestones,
		"materials":  project.Materials,
		"updatedAt":  project.UpdatedAt,
	}}
	_, err := cc.collection.UpdateOne(c.Request().Context(), bson.M{"_id": project.ID}, update)
	return err
}
