package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AssignmentsCollection = "assignments"

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "Pending"
	AssignmentCompleted AssignmentStatus = "Completed"
	AssignmentOverdue   AssignmentStatus = "Overdue"
)

// Assignment references its course by name string; no referential check is
// made against the courses collection.
type Assignment struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required,notblank"`
	Course      string             `json:"course" bson:"course" validate:"required,notblank"`
	DueDate     time.Time          `json:"dueDate" bson:"dueDate" validate:"required"`
	Description string             `json:"description" bson:"description"`
	Status      AssignmentStatus   `json:"status" bson:"status" validate:"omitempty,oneof=Pending Completed Overdue"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (a *Assignment) ApplyDefaults() {
	if a.Status == "" {
		a.Status = AssignmentPending
	}
}
