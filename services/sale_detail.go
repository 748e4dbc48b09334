package services

import (
	"context"
	"fmt"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/models"
)

// SaleDetailService talks to the sale-detail resource.
type SaleDetailService struct {
	c    *client.Client
	base string
}

func (s *SaleDetailService) List(ctx context.Context) ([]models.SaleDetail, error) {
	resp, err := s.c.Request(ctx, s.base, nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeSaleDetails(resp), nil
}

// ListBySale returns the lines of one sale.
func (s *SaleDetailService) ListBySale(ctx context.Context, saleID int64) ([]models.SaleDetail, error) {
	resp, err := s.c.Request(ctx, fmt.Sprintf("%s/venta/%d", s.base, saleID), nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeSaleDetails(resp), nil
}

func (s *SaleDetailService) Create(ctx context.Context, d models.SaleDetail) error {
	_, err := s.c.JSON(ctx, "POST", s.base, d)
	return err
}

func (s *SaleDetailService) Update(ctx context.Context, id int64, d models.SaleDetail) error {
	_, err := s.c.JSON(ctx, "PUT", fmt.Sprintf("%s/%d", s.base, id), d)
	return err
}

func (s *SaleDetailService) Delete(ctx context.Context, id int64) error {
	_, err := s.c.JSON(ctx, "DELETE", fmt.Sprintf("%s/%d", s.base, id), nil)
	return err
}
