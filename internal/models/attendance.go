package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AttendanceCollection = "attendance"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
)

type Attendance struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	StudentName string             `json:"studentName" bson:"studentName" validate:"required,notblank"`
	Date        time.Time          `json:"date" bson:"date"`
	Status      AttendanceStatus   `json:"status" bson:"status" validate:"required,oneof=Present Absent Late"`
	Course      string             `json:"course" bson:"course"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (a *Attendance) ApplyDefaults() {
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
}
