package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectBidding    ProjectStatus = "bidding"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

type MaterialStatus string

const (
	MaterialPending   MaterialStatus = "pending"
	MaterialOrdered   MaterialStatus = "ordered"
	MaterialDelivered MaterialStatus = "delivered"
)

// Milestone completion is one-way: once Completed is true and
// CompletedAt recorded, neither is ever reverted.
type Milestone struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	DueDate     time.Time  `bson:"dueDate" json:"dueDate"`
	Completed   bool       `bson:"completed" json:"completed"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

type Material struct {
	ID        string         `bson:"id" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Quantity  float64        `bson:"quantity" json:"quantity"`
	Unit      string         `bson:"unit" json:"unit"`
	UnitPrice float64        `bson:"unitPrice" json:"unitPrice"`
	Supplier  string         `bson:"supplier" json:"supplier"`
	Status    MaterialStatus `bson:"status" json:"status"`
}

type ConstructionProject struct {
	ID           string              `bson:"_id" json:"id"`
	Title        string              `bson:"title" json:"title"`
	Description  string              `bson:"description" json:"description"`
	ProjectType  string              `bson:"projectType" json:"projectType"`
	Budget       float64             `bson:"budget" json:"budget"`
	Timeline     string              `bson:"timeline" json:"timeline"`
	Location     string              `bson:"location" json:"location"`
	ClientID     primitive.ObjectID  `bson:"clientId" json:"clientId"`
	ContractorID *primitive.ObjectID `bson:"contractorId,omitempty" json:"contractorId,omitempty"`
	Status       ProjectStatus       `bson:"status" json:"status"`
	Milestones   []Milestone         `bson:"milestones" json:"milestones"`
	Materials    []Material          `bson:"materials" json:"materials"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type CreateProjectRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	ProjectType string  `json:"projectType" validate:"required"`
	Budget      float64 `json:"budget" validate:"gte=0"`
	Timeline    string  `json:"timeline"`
	Location    string  `json:"location" validate:"required"`
}

type AddMilestoneRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" validate:"required"`
}

type AddMaterialRequest struct {
	Name      string  `json:"name" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"gt=0"`
	Unit      string  `json:"unit" validate:"required"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
	Supplier  string  `json:"supplier"`
}
