package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PollDoc es una encuesta creada por un instructor.
type PollDoc struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Question  string             `json:"question" bson:"question"`
	Options   []string           `json:"options" bson:"options"`
	CreatedBy primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	Closed    bool               `json:"closed" bson:"closed"`
	CreatedAt string             `json:"createdAt" bson:"createdAt"`
}

// PollVoteDoc es el voto de un usuario: a lo sumo uno por (pollId, userId),
// re-votar sobreescribe la opción.
type PollVoteDoc struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PollID primitive.ObjectID `json:"pollId" bson:"pollId"`
	UserID primitive.ObjectID `json:"userId" bson:"userId"`
	Option int                `json:"option" bson:"option"`
}

// PollResults son los conteos por opción, derivados al momento.
type PollResults struct {
	PollID   string   `json:"pollId"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Counts   []int    `json:"counts"`
	Total    int      `json:"total"`
	Closed   bool     `json:"closed"`
}
