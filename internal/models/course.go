package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CoursesCollection = "courses"

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// Course references its instructor by display name, not by id. The coupling
// is deliberately loose: deleting an Instructor leaves Courses untouched.
type Course struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title" validate:"required,notblank"`
	Instructor       string             `json:"instructor" bson:"instructor" validate:"required,notblank"`
	Description      string             `json:"description" bson:"description"`
	Duration         string             `json:"duration" bson:"duration"`
	Price            float64            `json:"price" bson:"price" validate:"gte=0"`
	Image            string             `json:"image" bson:"image"`
	Level            CourseLevel        `json:"level" bson:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	StudentsEnrolled int                `json:"studentsEnrolled" bson:"studentsEnrolled" validate:"gte=0"`
	Rating           float64            `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (c *Course) ApplyDefaults() {
	if c.Level == "" {
		c.Level = LevelBeginner
	}
}
