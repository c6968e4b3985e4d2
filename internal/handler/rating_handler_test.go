package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbiothmane/POLO341-sub000/internal/models"
	"github.com/sbiothmane/POLO341-sub000/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubTeamFinder struct {
	team *models.TeamDoc
}

func (s *stubTeamFinder) FindByName(ctx context.Context, name string) (*models.TeamDoc, error) {
	if s.team != nil && s.team.Name == name {
		return s.team, nil
	}
	return nil, nil
}

type stubRatingStore struct {
	docs []models.RatingDoc
}

func (s *stubRatingStore) GetByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.RatingDoc, error) {
	return s.docs, nil
}

func (s *stubRatingStore) Upsert(ctx context.Context, teamID, evaluator, ratedStudent primitive.ObjectID,
	scores models.RatingScores, comments models.RatingComments) error {
	return nil
}

type stubUserGetter struct {
	users map[primitive.ObjectID]*models.UserDoc
}

func (s *stubUserGetter) FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error) {
	return s.users[id], nil
}

func newRatingsRouter(svc *service.RatingService) *chi.Mux {
	h := NewRatingHandler(svc)
	r := chi.NewRouter()
	r.Post("/teams/{teamName}/ratings:aggregate", h.AggregateRatings)
	r.Get("/teams/{teamName}/ratings/summary", h.GetTeamSummary)
	return r
}

func TestAggregateRatingsEndpoint(t *testing.T) {
	eval := primitive.NewObjectID()
	stu := primitive.NewObjectID()
	teamID := primitive.NewObjectID()

	team := &models.TeamDoc{ID: teamID, Name: "Team-A", Students: []primitive.ObjectID{eval, stu}}
	users := map[primitive.ObjectID]*models.UserDoc{
		eval: {ID: eval, Username: "eval1"},
		stu:  {ID: stu, Username: "JohnDoe"},
	}
	docs := []models.RatingDoc{
		{
			ID: primitive.NewObjectID(), TeamID: teamID,
			Evaluator: eval, RatedStudent: stu,
			Ratings:   models.RatingScores{Cooperation: 4, Conceptual: 3, Practical: 5, WorkEthic: 4},
			Timestamp: 100,
		},
	}

	svc := service.NewRatingService(
		&stubTeamFinder{team: team},
		&stubRatingStore{docs: docs},
		&stubUserGetter{users: users},
	)
	router := newRatingsRouter(svc)

	t.Run("200 con {ratings: [...]}", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/teams/Team-A/ratings:aggregate", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Ratings []models.RatingDetail `json:"ratings"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Ratings, 1)
		assert.Equal(t, "eval1", body.Ratings[0].Evaluator)
		assert.Equal(t, stu.Hex(), body.Ratings[0].StudentID)
	})

	t.Run("404 con {message} si el equipo no existe", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/teams/nonexistent-team/ratings:aggregate", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["message"], "team not found")
	})

	t.Run("equipo sin ratings: 200 y lista vacía, no error", func(t *testing.T) {
		empty := service.NewRatingService(
			&stubTeamFinder{team: team},
			&stubRatingStore{},
			&stubUserGetter{users: users},
		)
		req := httptest.NewRequest(http.MethodPost, "/teams/Team-A/ratings:aggregate", nil)
		rec := httptest.NewRecorder()
		newRatingsRouter(empty).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Ratings []models.RatingDetail `json:"ratings"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.Ratings)
	})

	t.Run("resumen calculado server-side", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/teams/Team-A/ratings/summary?refresh=true", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body []models.RatingSummary
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 1)
		assert.Equal(t, 4.0, body[0].Average)
		assert.Equal(t, 1, body[0].PeersResponded)
	})
}
