package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sbiothmane/POLO341-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mocks con func fields, para no levantar Mongo en los tests

type mockTeamFinder struct {
	FindByNameFunc func(ctx context.Context, name string) (*models.TeamDoc, error)
}

func (m *mockTeamFinder) FindByName(ctx context.Context, name string) (*models.TeamDoc, error) {
	return m.FindByNameFunc(ctx, name)
}

type mockRatingStore struct {
	GetByTeamFunc func(ctx context.Context, teamID primitive.ObjectID) ([]models.RatingDoc, error)
	UpsertFunc    func(ctx context.Context, teamID, evaluator, ratedStudent primitive.ObjectID,
		scores models.RatingScores, comments models.RatingComments) error
}

func (m *mockRatingStore) GetByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.RatingDoc, error) {
	return m.GetByTeamFunc(ctx, teamID)
}

func (m *mockRatingStore) Upsert(ctx context.Context, teamID, evaluator, ratedStudent primitive.ObjectID,
	scores models.RatingScores, comments models.RatingComments) error {
	return m.UpsertFunc(ctx, teamID, evaluator, ratedStudent, scores, comments)
}

type mockUserGetter struct {
	FindByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error)
}

func (m *mockUserGetter) FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error) {
	return m.FindByIDFunc(ctx, id)
}

// usersByID arma un UserGetter sobre un map; ids que no están devuelven
// (nil, nil), igual que el repo real con ErrNoDocuments.
func usersByID(users map[primitive.ObjectID]*models.UserDoc) *mockUserGetter {
	return &mockUserGetter{
		FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error) {
			return users[id], nil
		},
	}
}

func teamByName(team *models.TeamDoc) *mockTeamFinder {
	return &mockTeamFinder{
		FindByNameFunc: func(ctx context.Context, name string) (*models.TeamDoc, error) {
			if team != nil && team.Name == name {
				return team, nil
			}
			return nil, nil
		},
	}
}

func TestGetTeamRatings(t *testing.T) {
	ctx := context.Background()

	eval1 := primitive.NewObjectID()
	eval2 := primitive.NewObjectID()
	stu1 := primitive.NewObjectID()
	teamID := primitive.NewObjectID()

	team := &models.TeamDoc{
		ID:       teamID,
		Name:     "Team-A",
		Students: []primitive.ObjectID{eval1, eval2, stu1},
	}
	users := map[primitive.ObjectID]*models.UserDoc{
		eval1: {ID: eval1, Username: "eval1", FirstName: "Eva", LastName: "Uno"},
		eval2: {ID: eval2, Username: "eval2", FirstName: "Eva", LastName: "Dos"},
		stu1:  {ID: stu1, Username: "JohnDoe"},
	}

	t.Run("equipo inexistente", func(t *testing.T) {
		svc := NewRatingService(teamByName(nil), &mockRatingStore{}, usersByID(users))

		_, err := svc.GetTeamRatings(ctx, "nonexistent-team")
		assert.ErrorIs(t, err, ErrTeamNotFound)
	})

	t.Run("error del store de equipos se propaga", func(t *testing.T) {
		boom := errors.New("mongo caído")
		teams := &mockTeamFinder{
			FindByNameFunc: func(ctx context.Context, name string) (*models.TeamDoc, error) {
				return nil, boom
			},
		}
		svc := NewRatingService(teams, &mockRatingStore{}, usersByID(users))

		_, err := svc.GetTeamRatings(ctx, "Team-A")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("equipo sin evaluaciones devuelve lista vacía", func(t *testing.T) {
		ratings := &mockRatingStore{
			GetByTeamFunc: func(ctx context.Context, id primitive.ObjectID) ([]models.RatingDoc, error) {
				return nil, nil
			},
		}
		svc := NewRatingService(teamByName(team), ratings, usersByID(users))

		rows, err := svc.GetTeamRatings(ctx, "Team-A")
		assert.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("filas resueltas en orden de la DB", func(t *testing.T) {
		docs := []models.RatingDoc{
			{
				ID: primitive.NewObjectID(), TeamID: teamID,
				Evaluator: eval1, RatedStudent: stu1,
				Ratings:   models.RatingScores{Cooperation: 4, Conceptual: 3, Practical: 5, WorkEthic: 4},
				Comments:  models.RatingComments{Cooperation: "buen trabajo"},
				Timestamp: 100,
			},
			{
				ID: primitive.NewObjectID(), TeamID: teamID,
				Evaluator: eval2, RatedStudent: stu1,
				Ratings:   models.RatingScores{Cooperation: 5, Conceptual: 4, Practical: 4, WorkEthic: 5},
				Timestamp: 200,
			},
		}
		ratings := &mockRatingStore{
			GetByTeamFunc: func(ctx context.Context, id primitive.ObjectID) ([]models.RatingDoc, error) {
				assert.Equal(t, teamID, id)
				return docs, nil
			},
		}
		svc := NewRatingService(teamByName(team), ratings, usersByID(users))

		rows, err := svc.GetTeamRatings(ctx, "Team-A")
		assert.NoError(t, err)
		assert.Len(t, rows, 2)

		assert.Equal(t, "eval1", rows[0].Evaluator)
		assert.Equal(t, "eval2", rows[1].Evaluator)
		assert.Equal(t, stu1.Hex(), rows[0].StudentID)
		// stu1 no tiene nombre separado guardado: sale del username
		assert.Equal(t, "John", rows[0].FirstName)
		assert.Equal(t, "Doe", rows[0].LastName)

		// comentarios: el que está se respeta, el que falta lleva placeholder
		assert.Equal(t, "buen trabajo", rows[0].Comments[0].Comment)
		assert.Equal(t, models.NoComment, rows[0].Comments[1].Comment)
		assert.Len(t, rows[0].Comments, 4)
	})

	t.Run("referencia rota degrada a Unknown sin tumbar el resto", func(t *testing.T) {
		deleted := primitive.NewObjectID() // no está en users
		docs := []models.RatingDoc{
			{
				ID: primitive.NewObjectID(), TeamID: teamID,
				Evaluator: eval1, RatedStudent: deleted,
				Ratings:   models.RatingScores{Cooperation: 3, Conceptual: 3, Practical: 3, WorkEthic: 3},
				Timestamp: 100,
			},
		}
		ratings := &mockRatingStore{
			GetByTeamFunc: func(ctx context.Context, id primitive.ObjectID) ([]models.RatingDoc, error) {
				return docs, nil
			},
		}
		svc := NewRatingService(teamByName(team), ratings, usersByID(users))

		rows, err := svc.GetTeamRatings(ctx, "Team-A")
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Unknown", rows[0].StudentID)
		assert.Equal(t, "Unknown", rows[0].FirstName)
		assert.Equal(t, "eval1", rows[0].Evaluator)
		assert.Equal(t, models.RatingScores{Cooperation: 3, Conceptual: 3, Practical: 3, WorkEthic: 3}, rows[0].Ratings)
	})
}

func TestSummarize(t *testing.T) {
	detail := func(student string, coop, conc, prac, work int) models.RatingDetail {
		return models.RatingDetail{
			StudentID: student,
			FirstName: "F" + student,
			LastName:  "L" + student,
			Ratings:   models.RatingScores{Cooperation: coop, Conceptual: conc, Practical: prac, WorkEthic: work},
		}
	}

	t.Run("dos evaluadores para el mismo estudiante", func(t *testing.T) {
		rows := []models.RatingDetail{
			detail("stu1", 4, 3, 5, 4),
			detail("stu1", 5, 4, 4, 5),
		}

		out := Summarize(rows)
		assert.Len(t, out, 1)

		s := out[0]
		assert.Equal(t, "stu1", s.StudentID)
		assert.Equal(t, 4.50, s.Cooperation)
		assert.Equal(t, 3.50, s.Conceptual)
		assert.Equal(t, 4.50, s.Practical)
		assert.Equal(t, 4.50, s.WorkEthic)
		assert.Equal(t, 4.25, s.Average)
		assert.Equal(t, 2, s.PeersResponded)
	})

	t.Run("una sola evaluación: average es la media de las 4 dimensiones", func(t *testing.T) {
		out := Summarize([]models.RatingDetail{detail("stu1", 4, 3, 5, 4)})
		assert.Len(t, out, 1)
		assert.Equal(t, 4.0, out[0].Average)
		assert.Equal(t, 1, out[0].PeersResponded)
	})

	t.Run("una fila por estudiante distinto, en orden de primera aparición", func(t *testing.T) {
		rows := []models.RatingDetail{
			detail("stu2", 1, 1, 1, 1),
			detail("stu1", 5, 5, 5, 5),
			detail("stu2", 3, 3, 3, 3),
		}

		out := Summarize(rows)
		assert.Len(t, out, 2)
		assert.Equal(t, "stu2", out[0].StudentID)
		assert.Equal(t, "stu1", out[1].StudentID)
		assert.Equal(t, 2, out[0].PeersResponded)
		assert.Equal(t, 2.0, out[0].Average)
	})

	t.Run("redondeo a 2 decimales", func(t *testing.T) {
		rows := []models.RatingDetail{
			detail("stu1", 4, 4, 4, 4),
			detail("stu1", 4, 4, 4, 4),
			detail("stu1", 2, 2, 2, 2),
		}

		out := Summarize(rows)
		// 10/3 = 3.333... → 3.33
		assert.Equal(t, 3.33, out[0].Cooperation)
		assert.Equal(t, 3.33, out[0].Average)
	})

	t.Run("filas con referencia rota se agrupan bajo Unknown", func(t *testing.T) {
		rows := []models.RatingDetail{
			{StudentID: "Unknown", FirstName: "Unknown", LastName: "Unknown",
				Ratings: models.RatingScores{Cooperation: 2, Conceptual: 2, Practical: 2, WorkEthic: 2}},
			{StudentID: "Unknown", FirstName: "Unknown", LastName: "Unknown",
				Ratings: models.RatingScores{Cooperation: 4, Conceptual: 4, Practical: 4, WorkEthic: 4}},
		}

		out := Summarize(rows)
		assert.Len(t, out, 1)
		assert.Equal(t, "Unknown", out[0].StudentID)
		assert.Equal(t, 2, out[0].PeersResponded)
		assert.Equal(t, 3.0, out[0].Average)
	})

	t.Run("input vacío", func(t *testing.T) {
		assert.Empty(t, Summarize(nil))
	})
}

func TestSubmitRating(t *testing.T) {
	ctx := context.Background()

	eval := primitive.NewObjectID()
	rated := primitive.NewObjectID()
	outsider := primitive.NewObjectID()
	teamID := primitive.NewObjectID()

	team := &models.TeamDoc{
		ID:       teamID,
		Name:     "Team-A",
		Students: []primitive.ObjectID{eval, rated},
	}

	okScores := models.RatingScores{Cooperation: 4, Conceptual: 3, Practical: 5, WorkEthic: 4}

	t.Run("upsert con el equipo resuelto", func(t *testing.T) {
		called := false
		ratings := &mockRatingStore{
			UpsertFunc: func(ctx context.Context, tID, e, rs primitive.ObjectID,
				scores models.RatingScores, comments models.RatingComments) error {
				called = true
				assert.Equal(t, teamID, tID)
				assert.Equal(t, eval, e)
				assert.Equal(t, rated, rs)
				assert.Equal(t, okScores, scores)
				return nil
			},
		}
		svc := NewRatingService(teamByName(team), ratings, &mockUserGetter{})

		err := svc.SubmitRating(ctx, SubmitRatingData{
			TeamName:     "Team-A",
			Evaluator:    eval,
			RatedStudent: rated,
			Scores:       okScores,
		})
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("autoevaluación rechazada", func(t *testing.T) {
		svc := NewRatingService(teamByName(team), &mockRatingStore{}, &mockUserGetter{})

		err := svc.SubmitRating(ctx, SubmitRatingData{
			TeamName: "Team-A", Evaluator: eval, RatedStudent: eval, Scores: okScores,
		})
		assert.ErrorIs(t, err, ErrSelfRating)
	})

	t.Run("evaluado fuera del equipo", func(t *testing.T) {
		svc := NewRatingService(teamByName(team), &mockRatingStore{}, &mockUserGetter{})

		err := svc.SubmitRating(ctx, SubmitRatingData{
			TeamName: "Team-A", Evaluator: eval, RatedStudent: outsider, Scores: okScores,
		})
		assert.ErrorIs(t, err, ErrNotTeamMember)
	})

	t.Run("puntaje fuera de rango", func(t *testing.T) {
		svc := NewRatingService(teamByName(team), &mockRatingStore{}, &mockUserGetter{})

		err := svc.SubmitRating(ctx, SubmitRatingData{
			TeamName: "Team-A", Evaluator: eval, RatedStudent: rated,
			Scores: models.RatingScores{Cooperation: 6},
		})
		assert.Error(t, err)
	})

	t.Run("equipo inexistente", func(t *testing.T) {
		svc := NewRatingService(teamByName(nil), &mockRatingStore{}, &mockUserGetter{})

		err := svc.SubmitRating(ctx, SubmitRatingData{
			TeamName: "Team-B", Evaluator: eval, RatedStudent: rated, Scores: okScores,
		})
		assert.ErrorIs(t, err, ErrTeamNotFound)
	})
}
