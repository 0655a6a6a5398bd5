package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StudentsCollection = "students"

type StudentStatus string

const (
	StudentActive   StudentStatus = "Active"
	StudentPending  StudentStatus = "Pending"
	StudentInactive StudentStatus = "Inactive"
)

const defaultStudentImg = "https://i.pravatar.cc/150"

type Student struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required,notblank"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Phone     string             `json:"phone" bson:"phone"`
	Enrolled  string             `json:"enrolled" bson:"enrolled"`
	Status    StudentStatus      `json:"status" bson:"status" validate:"omitempty,oneof=Active Pending Inactive"`
	Img       string             `json:"img" bson:"img"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (s *Student) ApplyDefaults() {
	if s.Status == "" {
		s.Status = StudentActive
	}
	if s.Img == "" {
		s.Img = defaultStudentImg
	}
}
