package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AnnouncementsCollection = "announcements"

type AnnouncementPriority string

const (
	PriorityLow    AnnouncementPriority = "Low"
	PriorityMedium AnnouncementPriority = "Medium"
	PriorityHigh   AnnouncementPriority = "High"
)

type Announcement struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Title     string               `json:"title" bson:"title" validate:"required,notblank"`
	Content   string               `json:"content" bson:"content" validate:"required,notblank"`
	Date      time.Time            `json:"date" bson:"date"`
	Author    string               `json:"author" bson:"author"`
	Priority  AnnouncementPriority `json:"priority" bson:"priority" validate:"omitempty,oneof=Low Medium High"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

func (a *Announcement) ApplyDefaults() {
	if a.Priority == "" {
		a.Priority = PriorityMedium
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
}
