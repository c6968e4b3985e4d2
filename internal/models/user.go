package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserDoc es el documento de usuario en Mongo.
type UserDoc struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"passwordHash" bson:"passwordHash"`
	Role         string             `json:"role" bson:"role"` // student | instructor
	FirstName    string             `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName     string             `json:"lastName,omitempty" bson:"lastName,omitempty"`
	CreatedAt    string             `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string             `json:"updatedAt" bson:"updatedAt"`
}

// ResolvedUser es la proyección que usamos para mostrar una referencia
// de usuario en tablas (id + username + nombre separado).
type ResolvedUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
