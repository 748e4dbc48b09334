package services

import (
	"context"
	"fmt"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/models"
)

// ProductTypeService talks to the product-type resource.
type ProductTypeService struct {
	c    *client.Client
	base string
}

// ProductTypePayload is the outgoing type shape.
type ProductTypePayload struct {
	Label       string `json:"tipo"`
	Description string `json:"descripcion"`
}

func (s *ProductTypeService) List(ctx context.Context) ([]models.ProductType, error) {
	resp, err := s.c.Request(ctx, s.base, nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeProductTypes(resp), nil
}

// ListActive returns only the types usable on new products.
func (s *ProductTypeService) ListActive(ctx context.Context) ([]models.ProductType, error) {
	resp, err := s.c.Request(ctx, s.base+"/activos", nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeProductTypes(resp), nil
}

func (s *ProductTypeService) Create(ctx context.Context, p ProductTypePayload) error {
	_, err := s.c.JSON(ctx, "POST", s.base, p)
	return err
}

func (s *ProductTypeService) Update(ctx context.Context, id int64, p ProductTypePayload) error {
	_, err := s.c.JSON(ctx, "PUT", fmt.Sprintf("%s/%d", s.base, id), p)
	return err
}

func (s *ProductTypeService) Delete(ctx context.Context, id int64) error {
	_, err := s.c.JSON(ctx, "DELETE", fmt.Sprintf("%s/%d", s.base, id), nil)
	return err
}
