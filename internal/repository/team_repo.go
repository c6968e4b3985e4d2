package repository

import (
	"context"

	"github.com/sbiothmane/POLO341-sub000/internal/db"
	"github.com/sbiothmane/POLO341-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TeamRepository struct {
	col *mongo.Collection
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{col: db.DB().Collection("teams")}
}

// FindByName busca por nombre exacto. Si hubiera duplicados (no hay
// índice único) devuelve el primero en orden de iteración de la
// colección; la unicidad se chequea al crear (TeamService.Create).
func (r *TeamRepository) FindByName(ctx context.Context, name string) (*models.TeamDoc, error) {
	var t models.TeamDoc
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &t, err
}

func (r *TeamRepository) Insert(ctx context.Context, t *models.TeamDoc) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// List devuelve todos los equipos, opcionalmente solo los de un instructor.
func (r *TeamRepository) List(ctx context.Context, instructor *primitive.ObjectID) ([]models.TeamDoc, error) {
	filter := bson.M{}
	if instructor != nil {
		filter["instructor"] = *instructor
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.TeamDoc
	for cur.Next(ctx) {
		var t models.TeamDoc
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, cur.Err()
}

// ListByStudent devuelve los equipos donde aparece el estudiante.
func (r *TeamRepository) ListByStudent(ctx context.Context, student primitive.ObjectID) ([]models.TeamDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{"students": student})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.TeamDoc
	for cur.Next(ctx) {
		var t models.TeamDoc
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, cur.Err()
}
