package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TeamDoc es un equipo: un instructor y sus estudiantes (referencias,
// no datos embebidos).
type TeamDoc struct {
	ID         primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name       string               `json:"name" bson:"name"`
	Instructor primitive.ObjectID   `json:"instructor" bson:"instructor"`
	Students   []primitive.ObjectID `json:"students" bson:"students"`
	CreatedAt  string               `json:"createdAt" bson:"createdAt"`
}
