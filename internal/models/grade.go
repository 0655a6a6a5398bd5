package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const GradesCollection = "grades"

// Grade holds either a letter grade or a percentage in Grade, with Score as
// an optional numeric companion.
type Grade struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	StudentName string             `json:"studentName" bson:"studentName" validate:"required,notblank"`
	Course      string             `json:"course" bson:"course" validate:"required,notblank"`
	Assignment  string             `json:"assignment" bson:"assignment"`
	Grade       string             `json:"grade" bson:"grade" validate:"required,notblank"`
	Score       *float64           `json:"score,omitempty" bson:"score,omitempty"`
	Remarks     string             `json:"remarks" bson:"remarks"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (g *Grade) ApplyDefaults() {}
