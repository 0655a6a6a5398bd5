package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const InstructorsCollection = "instructors"

type Instructor struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required,notblank"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Subject   string             `json:"subject" bson:"subject" validate:"required,notblank"`
	Bio       string             `json:"bio" bson:"bio"`
	Image     string             `json:"image" bson:"image"`
	Rating    float64            `json:"rating" bson:"rating" validate:"gte=0"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (i *Instructor) ApplyDefaults() {}
