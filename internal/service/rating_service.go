package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/sbiothmane/POLO341-sub000/internal/cache"
	"github.com/sbiothmane/POLO341-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TTL corto: el resumen se recalcula seguido mientras el equipo evalúa.
const summaryCacheTTLSeconds = 60

var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrNotTeamMember = errors.New("student is not a member of the team")
	ErrSelfRating    = errors.New("students cannot rate themselves")
)

// Interfaces mínimas sobre los repos, para poder testear el agregado
// sin levantar Mongo. Los repos concretos las implementan tal cual.
type TeamFinder interface {
	FindByName(ctx context.Context, name string) (*models.TeamDoc, error)
}

type RatingStore interface {
	GetByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.RatingDoc, error)
	Upsert(ctx context.Context, teamID, evaluator, ratedStudent primitive.ObjectID,
		scores models.RatingScores, comments models.RatingComments) error
}

type UserGetter interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error)
}

type RatingService struct {
	teams   TeamFinder
	ratings RatingStore
	users   UserGetter
}

func NewRatingService(teams TeamFinder, ratings RatingStore, users UserGetter) *RatingService {
	return &RatingService{
		teams:   teams,
		ratings: ratings,
		users:   users,
	}
}

// resolveUser nunca falla: una referencia rota (usuario borrado, error
// puntual de lectura) degrada al sentinel "Unknown" en vez de tumbar
// la tabla entera del equipo.
func (s *RatingService) resolveUser(ctx context.Context, ref primitive.ObjectID) models.ResolvedUser {
	u, err := s.users.FindByID(ctx, ref)
	if err != nil || u == nil {
		return models.ResolvedUser{
			ID:        "Unknown",
			Username:  "Unknown",
			FirstName: "Unknown",
			LastName:  "Unknown",
		}
	}

	first, last := u.FirstName, u.LastName
	if first == "" || last == "" {
		// el registro viejo no guardaba nombre separado
		first, last = SplitName(u.Username)
	}

	return models.ResolvedUser{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		FirstName: first,
		LastName:  last,
	}
}

// GetTeamRatings arma la vista de detalle: una fila por evaluación del
// equipo, con las referencias ya resueltas. Equipo sin evaluaciones
// devuelve slice vacío, no error.
func (s *RatingService) GetTeamRatings(ctx context.Context, teamName string) ([]models.RatingDetail, error) {
	team, err := s.teams.FindByName(ctx, teamName)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	docs, err := s.ratings.GetByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	// Resolvemos las referencias en paralelo (son lecturas
	// independientes); rows[i] conserva el orden de iteración de la DB
	// y wg.Wait() es la barrera antes de devolver.
	rows := make([]models.RatingDetail, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		go func(i int, d models.RatingDoc) {
			defer wg.Done()
			evaluator := s.resolveUser(ctx, d.Evaluator)
			student := s.resolveUser(ctx, d.RatedStudent)
			rows[i] = buildDetail(d, evaluator, student)
		}(i, docs[i])
	}
	wg.Wait()

	return rows, nil
}

func buildDetail(d models.RatingDoc, evaluator, student models.ResolvedUser) models.RatingDetail {
	return models.RatingDetail{
		ID:        d.ID.Hex(),
		Evaluator: evaluator.Username,
		StudentID: student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Ratings:   d.Ratings,
		Comments: []models.RatingComment{
			{Type: "cooperation", Comment: orNoComment(d.Comments.Cooperation)},
			{Type: "conceptualContribution", Comment: orNoComment(d.Comments.Conceptual)},
			{Type: "practicalContribution", Comment: orNoComment(d.Comments.Practical)},
			{Type: "workEthic", Comment: orNoComment(d.Comments.WorkEthic)},
		},
		Timestamp: d.Timestamp,
	}
}

func orNoComment(c string) string {
	if c == "" {
		return models.NoComment
	}
	return c
}

// Summarize agrupa las filas de detalle por estudiante evaluado, en
// orden de primera aparición, y promedia cada dimensión (2 decimales).
// Mismo input, mismo output: no hay aleatoriedad ni reordenamiento.
func Summarize(details []models.RatingDetail) []models.RatingSummary {
	type acc struct {
		firstName, lastName    string
		coop, conc, prac, work int
		n                      int
	}

	var order []string
	byStudent := make(map[string]*acc)

	for _, d := range details {
		a, ok := byStudent[d.StudentID]
		if !ok {
			a = &acc{firstName: d.FirstName, lastName: d.LastName}
			byStudent[d.StudentID] = a
			order = append(order, d.StudentID)
		}
		a.coop += d.Ratings.Cooperation
		a.conc += d.Ratings.Conceptual
		a.prac += d.Ratings.Practical
		a.work += d.Ratings.WorkEthic
		a.n++
	}

	out := make([]models.RatingSummary, 0, len(order))
	for _, id := range order {
		a := byStudent[id]
		n := float64(a.n)
		total := a.coop + a.conc + a.prac + a.work
		out = append(out, models.RatingSummary{
			StudentID:      id,
			FirstName:      a.firstName,
			LastName:       a.lastName,
			Cooperation:    round2(float64(a.coop) / n),
			Conceptual:     round2(float64(a.conc) / n),
			Practical:      round2(float64(a.prac) / n),
			WorkEthic:      round2(float64(a.work) / n),
			Average:        round2(float64(total) / (4 * n)),
			PeersResponded: a.n,
		})
	}
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// GetTeamSummary calcula (o lee de Redis) el resumen por estudiante.
func (s *RatingService) GetTeamSummary(ctx context.Context, teamName string, refresh bool) ([]models.RatingSummary, error) {
	key := summaryCacheKey(teamName)

	if !refresh {
		var cached []models.RatingSummary
		if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	details, err := s.GetTeamRatings(ctx, teamName)
	if err != nil {
		return nil, err
	}

	summary := Summarize(details)
	_ = cache.SetJSON(ctx, key, summary, summaryCacheTTLSeconds)
	return summary, nil
}

func summaryCacheKey(teamName string) string {
	return fmt.Sprintf("ratings:summary:%s", teamName)
}

// ================== SUBMIT ==================

type SubmitRatingData struct {
	TeamName     string
	Evaluator    primitive.ObjectID
	RatedStudent primitive.ObjectID
	Scores       models.RatingScores
	Comments     models.RatingComments
}

// SubmitRating valida y escribe la evaluación. La escritura es un solo
// upsert atómico en el repo: re-enviar sobreescribe ratings/comments y
// el timestamp de creación no cambia.
func (s *RatingService) SubmitRating(ctx context.Context, data SubmitRatingData) error {
	if err := validateScores(data.Scores); err != nil {
		return err
	}
	if data.Evaluator == data.RatedStudent {
		return ErrSelfRating
	}

	team, err := s.teams.FindByName(ctx, data.TeamName)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}

	if !isTeamStudent(team, data.Evaluator) || !isTeamStudent(team, data.RatedStudent) {
		return ErrNotTeamMember
	}

	if err := s.ratings.Upsert(ctx, team.ID, data.Evaluator, data.RatedStudent, data.Scores, data.Comments); err != nil {
		return err
	}

	// el resumen cacheado quedó viejo
	_ = cache.Del(ctx, summaryCacheKey(data.TeamName))
	return nil
}

// validateScores acepta 0 como "dimensión no respondida"; lo demás
// tiene que estar en [1,5].
func validateScores(sc models.RatingScores) error {
	for _, v := range []int{sc.Cooperation, sc.Conceptual, sc.Practical, sc.WorkEthic} {
		if v < 0 || v > 5 {
			return fmt.Errorf("rating values must be between 1 and 5")
		}
	}
	return nil
}

func isTeamStudent(team *models.TeamDoc, id primitive.ObjectID) bool {
	for _, s := range team.Students {
		if s == id {
			return true
		}
	}
	return false
}
