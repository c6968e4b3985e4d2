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

type PollRepository struct {
	polls *mongo.Collection
	votes *mongo.Collection
}

func NewPollRepository() *PollRepository {
	return &PollRepository{
		polls: db.DB().Collection("polls"),
		votes: db.DB().Collection("poll_votes"),
	}
}

func (r *PollRepository) Insert(ctx context.Context, p *models.PollDoc) (primitive.ObjectID, error) {
	res, err := r.polls.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *PollRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PollDoc, error) {
	var p models.PollDoc
	err := r.polls.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &p, err
}

func (r *PollRepository) List(ctx context.Context) ([]models.PollDoc, error) {
	cur, err := r.polls.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PollDoc
	for cur.Next(ctx) {
		var p models.PollDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

func (r *PollRepository) SetClosed(ctx context.Context, id primitive.ObjectID, closed bool) error {
	res, err := r.polls.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"closed": closed}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpsertVote registra o sobreescribe el voto del usuario en una sola
// operación (mismo patrón que el upsert de ratings).
func (r *PollRepository) UpsertVote(ctx context.Context, pollID, userID primitive.ObjectID, option int) error {
	_, err := r.votes.UpdateOne(ctx,
		bson.M{"pollId": pollID, "userId": userID},
		bson.M{"$set": bson.M{"option": option}},
		options.Update().SetUpsert(true),
	)
	return err
}

// CountVotes devuelve el conteo por opción (índices fuera de rango se
// ignoran, puede pasar si la encuesta se editó a mano en la DB).
func (r *PollRepository) CountVotes(ctx context.Context, pollID primitive.ObjectID, numOptions int) ([]int, error) {
	cur, err := r.votes.Find(ctx, bson.M{"pollId": pollID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := make([]int, numOptions)
	for cur.Next(ctx) {
		var v models.PollVoteDoc
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		if v.Option >= 0 && v.Option < numOptions {
			counts[v.Option]++
		}
	}
	return counts, cur.Err()
}
