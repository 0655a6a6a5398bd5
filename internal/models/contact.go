package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ContactsCollection = "contacts"

type ContactStatus string

const (
	ContactNew     ContactStatus = "New"
	ContactRead    ContactStatus = "Read"
	ContactReplied ContactStatus = "Replied"
)

type Contact struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required,notblank"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	Subject   string             `json:"subject" bson:"subject"`
	Message   string             `json:"message" bson:"message" validate:"required,notblank"`
	Status    ContactStatus      `json:"status" bson:"status" validate:"omitempty,oneof=New Read Replied"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (c *Contact) ApplyDefaults() {
	if c.Status == "" {
		c.Status = ContactNew
	}
}
