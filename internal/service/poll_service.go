package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sbiothmane/POLO341-sub000/internal/models"
	"github.com/sbiothmane/POLO341-sub000/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PollService struct {
	polls *repository.PollRepository
}

func NewPollService(polls *repository.PollRepository) *PollService {
	return &PollService{polls: polls}
}

func (s *PollService) Create(ctx context.Context, createdBy primitive.ObjectID, question string, options []string) (*models.PollDoc, error) {
	if question == "" {
		return nil, fmt.Errorf("question is required")
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("a poll needs at least 2 options")
	}
	for _, opt := range options {
		if opt == "" {
			return nil, fmt.Errorf("options cannot be empty")
		}
	}

	p := &models.PollDoc{
		Question:  question,
		Options:   options,
		CreatedBy: createdBy,
		Closed:    false,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	id, err := s.polls.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

func (s *PollService) List(ctx context.Context) ([]models.PollDoc, error) {
	return s.polls.List(ctx)
}

// Vote registra (o sobreescribe) el voto del usuario.
func (s *PollService) Vote(ctx context.Context, pollID, userID primitive.ObjectID, option int) error {
	p, err := s.polls.FindByID(ctx, pollID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("poll not found")
	}
	if p.Closed {
		return fmt.Errorf("poll is closed")
	}
	if option < 0 || option >= len(p.Options) {
		return fmt.Errorf("option out of range")
	}

	return s.polls.UpsertVote(ctx, pollID, userID, option)
}

// Results cuenta votos por opción, al momento.
func (s *PollService) Results(ctx context.Context, pollID primitive.ObjectID) (*models.PollResults, error) {
	p, err := s.polls.FindByID(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("poll not found")
	}

	counts, err := s.polls.CountVotes(ctx, pollID, len(p.Options))
	if err != nil {
		return nil, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	return &models.PollResults{
		PollID:   p.ID.Hex(),
		Question: p.Question,
		Options:  p.Options,
		Counts:   counts,
		Total:    total,
		Closed:   p.Closed,
	}, nil
}

// Close cierra la encuesta; solo el creador puede.
func (s *PollService) Close(ctx context.Context, pollID, by primitive.ObjectID) error {
	p, err := s.polls.FindByID(ctx, pollID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("poll not found")
	}
	if p.CreatedBy != by {
		return fmt.Errorf("only the poll creator can close it")
	}

	return s.polls.SetClosed(ctx, pollID, true)
}
