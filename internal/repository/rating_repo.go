package repository

import (
	"context"
	"time"

	"github.com/sbiothmane/POLO341-sub000/internal/db"
	"github.com/sbiothmane/POLO341-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{col: db.DB().Collection("ratings")}
}

// Upsert escribe la evaluación en una sola operación atómica:
// $setOnInsert deja el timestamp de creación inmutable y el filtro
// garantiza a lo sumo un documento por (teamId, evaluator, ratedStudent).
func (r *RatingRepository) Upsert(
	ctx context.Context,
	teamID, evaluator, ratedStudent primitive.ObjectID,
	scores models.RatingScores,
	comments models.RatingComments,
) error {
	now := time.Now().Unix()

	_, err := r.col.UpdateOne(ctx,
		bson.M{
			"teamId":       teamID,
			"evaluator":    evaluator,
			"ratedStudent": ratedStudent,
		},
		bson.M{
			"$set": bson.M{
				"ratings":   scores,
				"comments":  comments,
				"updatedAt": now,
			},
			// guardamos epoch (int64)
			"$setOnInsert": bson.M{"timestamp": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *RatingRepository) GetOne(
	ctx context.Context,
	teamID, evaluator, ratedStudent primitive.ObjectID,
) (*models.RatingDoc, error) {
	var d models.RatingDoc
	err := r.col.FindOne(ctx, bson.M{
		"teamId":       teamID,
		"evaluator":    evaluator,
		"ratedStudent": ratedStudent,
	}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &d, err
}

// GetByTeam trae todos los ratings del equipo, sin paginar
// (escala de salón de clases). El orden es el de iteración de Mongo.
func (r *RatingRepository) GetByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{"teamId": teamID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RatingDoc
	for cur.Next(ctx) {
		var d models.RatingDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, cur.Err()
}
