package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OfficeHourDoc es un bloque de horario de atención de un instructor.
type OfficeHourDoc struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Instructor primitive.ObjectID `json:"instructor" bson:"instructor"`
	Date       string             `json:"date" bson:"date"` // YYYY-MM-DD
	StartTime  string             `json:"startTime" bson:"startTime"`
	EndTime    string             `json:"endTime" bson:"endTime"`
	Location   string             `json:"location,omitempty" bson:"location,omitempty"`
	CreatedAt  string             `json:"createdAt" bson:"createdAt"`
}
