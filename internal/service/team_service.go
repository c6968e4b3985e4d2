package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sbiothmane/POLO341-sub000/internal/models"
	"github.com/sbiothmane/POLO341-sub000/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamService struct {
	teams *repository.TeamRepository
	users *repository.UserRepository
}

func NewTeamService(teams *repository.TeamRepository, users *repository.UserRepository) *TeamService {
	return &TeamService{teams: teams, users: users}
}

// Create arma un equipo nuevo. El nombre tiene que ser único: lo
// chequeamos con una lectura previa (no hay índice único; dos creates
// simultáneos con el mismo nombre podrían colarse, riesgo aceptado a
// esta escala).
func (s *TeamService) Create(ctx context.Context, name string, instructor primitive.ObjectID, studentIDs []string) (*models.TeamDoc, error) {
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}
	if len(studentIDs) == 0 {
		return nil, fmt.Errorf("a team needs at least one student")
	}

	existing, err := s.teams.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("team name already taken")
	}

	students := make([]primitive.ObjectID, 0, len(studentIDs))
	seen := make(map[primitive.ObjectID]bool)
	for _, raw := range studentIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid student id %q", raw)
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		u, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, fmt.Errorf("student %s not found", raw)
		}
		if u.Role != "student" {
			return nil, fmt.Errorf("user %s is not a student", u.Username)
		}
		students = append(students, id)
	}

	t := &models.TeamDoc{
		Name:       name,
		Instructor: instructor,
		Students:   students,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	id, err := s.teams.Insert(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id
	return t, nil
}

func (s *TeamService) GetByName(ctx context.Context, name string) (*models.TeamDoc, error) {
	t, err := s.teams.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTeamNotFound
	}
	return t, nil
}

func (s *TeamService) List(ctx context.Context, instructor *primitive.ObjectID) ([]models.TeamDoc, error) {
	return s.teams.List(ctx, instructor)
}

func (s *TeamService) ListByStudent(ctx context.Context, student primitive.ObjectID) ([]models.TeamDoc, error) {
	return s.teams.ListByStudent(ctx, student)
}
