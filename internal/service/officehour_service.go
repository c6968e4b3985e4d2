package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sbiothmane/POLO341-sub000/internal/models"
	"github.com/sbiothmane/POLO341-sub000/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OfficeHourService struct {
	hours *repository.OfficeHourRepository
}

type CreateOfficeHourData struct {
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Location  string
}

func NewOfficeHourService(hours *repository.OfficeHourRepository) *OfficeHourService {
	return &OfficeHourService{hours: hours}
}

func (s *OfficeHourService) Create(ctx context.Context, instructor primitive.ObjectID, data CreateOfficeHourData) (*models.OfficeHourDoc, error) {
	if _, err := time.Parse("2006-01-02", data.Date); err != nil {
		return nil, fmt.Errorf("invalid date (expected YYYY-MM-DD)")
	}
	start, err := time.Parse("15:04", data.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime (expected HH:MM)")
	}
	end, err := time.Parse("15:04", data.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid endTime (expected HH:MM)")
	}
	if !end.After(start) {
		return nil, fmt.Errorf("endTime must be after startTime")
	}

	oh := &models.OfficeHourDoc{
		Instructor: instructor,
		Date:       data.Date,
		StartTime:  data.StartTime,
		EndTime:    data.EndTime,
		Location:   data.Location,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	id, err := s.hours.Insert(ctx, oh)
	if err != nil {
		return nil, err
	}
	oh.ID = id
	return oh, nil
}

func (s *OfficeHourService) List(ctx context.Context, instructor *primitive.ObjectID) ([]models.OfficeHourDoc, error) {
	return s.hours.List(ctx, instructor)
}

// Delete borra un bloque propio; borrar uno ajeno (o inexistente) da
// el mismo "not found" para no filtrar de quién es.
func (s *OfficeHourService) Delete(ctx context.Context, id, instructor primitive.ObjectID) error {
	err := s.hours.Delete(ctx, id, instructor)
	if err == mongo.ErrNoDocuments {
		return fmt.Errorf("office hour not found")
	}
	return err
}
