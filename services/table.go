package services

import (
	"context"
	"fmt"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/models"
)

// TableService talks to the table resource.
type TableService struct {
	c    *client.Client
	base string
}

// TablePayload is the outgoing table shape.
type TablePayload struct {
	Number   int    `json:"numero"`
	Capacity int    `json:"capacidad"`
	Location string `json:"ubicacion"`
}

func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	resp, err := s.c.Request(ctx, s.base, nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeTables(resp), nil
}

// ListAvailable returns the tables free on the given date.
func (s *TableService) ListAvailable(ctx context.Context, date string) ([]models.Table, error) {
	resp, err := s.c.Request(ctx, withDateFilter(s.base+"/disponibles", date), nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeTables(resp), nil
}

func (s *TableService) Create(ctx context.Context, p TablePayload) error {
	_, err := s.c.JSON(ctx, "POST", s.base, p)
	return err
}

func (s *TableService) Update(ctx context.Context, id int64, p TablePayload) error {
	_, err := s.c.JSON(ctx, "PUT", fmt.Sprintf("%s/%d", s.base, id), p)
	return err
}

func (s *TableService) Delete(ctx context.Context, id int64) error {
	_, err := s.c.JSON(ctx, "DELETE", fmt.Sprintf("%s/%d", s.base, id), nil)
	return err
}
