package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// NoComment es el placeholder cuando el evaluador no dejó comentario.
const NoComment = "No comment provided"

// RatingScores son las 4 dimensiones de la evaluación, enteros en [1,5].
// Una dimensión ausente queda en 0 y promedia como 0.
type RatingScores struct {
	Cooperation int `json:"cooperation" bson:"cooperation"`
	Conceptual  int `json:"conceptualContribution" bson:"conceptualContribution"`
	Practical   int `json:"practicalContribution" bson:"practicalContribution"`
	WorkEthic   int `json:"workEthic" bson:"workEthic"`
}

// RatingComments lleva el texto libre por dimensión.
type RatingComments struct {
	Cooperation string `json:"cooperation,omitempty" bson:"cooperation,omitempty"`
	Conceptual  string `json:"conceptualContribution,omitempty" bson:"conceptualContribution,omitempty"`
	Practical   string `json:"practicalContribution,omitempty" bson:"practicalContribution,omitempty"`
	WorkEthic   string `json:"workEthic,omitempty" bson:"workEthic,omitempty"`
}

// RatingDoc es una evaluación en Mongo: un evaluador sobre un compañero
// dentro de un equipo. A lo sumo un documento por
// (teamId, evaluator, ratedStudent); el upsert de la capa repository
// garantiza eso con una sola escritura.
type RatingDoc struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TeamID       primitive.ObjectID `json:"teamId" bson:"teamId"`
	Evaluator    primitive.ObjectID `json:"evaluator" bson:"evaluator"`
	RatedStudent primitive.ObjectID `json:"ratedStudent" bson:"ratedStudent"`
	Ratings      RatingScores       `json:"ratings" bson:"ratings"`
	Comments     RatingComments     `json:"comments" bson:"comments"`
	// epoch (int64); inmutable después de la primera escritura
	Timestamp int64 `json:"timestamp" bson:"timestamp"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// RatingComment es un comentario ya etiquetado para la vista de detalle.
type RatingComment struct {
	Type    string `json:"type"`
	Comment string `json:"comment"`
}

// RatingDetail es una fila de la vista de detalle: un RatingDoc con las
// referencias ya resueltas. No se persiste.
type RatingDetail struct {
	ID        string          `json:"id"`
	Evaluator string          `json:"evaluator"` // username del evaluador
	StudentID string          `json:"studentId"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Ratings   RatingScores    `json:"ratings"`
	Comments  []RatingComment `json:"comments"`
	Timestamp int64           `json:"timestamp"`
}

// RatingSummary es el agregado por estudiante evaluado: promedio de cada
// dimensión sobre todos los evaluadores, redondeado a 2 decimales.
// Se calcula en cada request, nunca se persiste.
type RatingSummary struct {
	StudentID      string  `json:"studentId"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Cooperation    float64 `json:"cooperation"`
	Conceptual     float64 `json:"conceptualContribution"`
	Practical      float64 `json:"practicalContribution"`
	WorkEthic      float64 `json:"workEthic"`
	Average        float64 `json:"average"`
	PeersResponded int     `json:"peersResponded"`
}
