package repository

import (
	"context"

	"github.com/sbiothmane/POLO341-sub000/internal/db"
	"github.com/sbiothmane/POLO341-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OfficeHourRepository struct {
	col *mongo.Collection
}

func NewOfficeHourRepository() *OfficeHourRepository {
	return &OfficeHourRepository{col: db.DB().Collection("office_hours")}
}

func (r *OfficeHourRepository) Insert(ctx context.Context, oh *models.OfficeHourDoc) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, oh)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// List devuelve los bloques ordenados por fecha y hora de inicio,
// opcionalmente solo los de un instructor.
func (r *OfficeHourRepository) List(ctx context.Context, instructor *primitive.ObjectID) ([]models.OfficeHourDoc, error) {
	filter := bson.M{}
	if instructor != nil {
		filter["instructor"] = *instructor
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "startTime", Value: 1},
	})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.OfficeHourDoc
	for cur.Next(ctx) {
		var oh models.OfficeHourDoc
		if err := cur.Decode(&oh); err != nil {
			return nil, err
		}
		out = append(out, oh)
	}
	return out, cur.Err()
}

// Delete borra el bloque solo si pertenece al instructor.
func (r *OfficeHourRepository) Delete(ctx context.Context, id, instructor primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "instructor": instructor})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
