package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/models"
)

// ProductService talks to the product resource. Create and update are
// always multipart because they may carry an image; the backend routes
// both through POST.
type ProductService struct {
	c    *client.Client
	base string
}

// ProductForm is the outgoing product shape. Photo is optional.
type ProductForm struct {
	Name        string
	Description string
	Price       float64
	TypeID      int64
	Photo       *client.FileField
}

func (f ProductForm) fields() map[string]string {
	return map[string]string{
		"nombre":      f.Name,
		"descripcion": f.Description,
		"precio":      strconv.FormatFloat(f.Price, 'f', -1, 64),
		"idTipo":      strconv.FormatInt(f.TypeID, 10),
	}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	resp, err := s.c.Request(ctx, s.base, nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeProducts(resp), nil
}

func (s *ProductService) Create(ctx context.Context, f ProductForm) (models.Product, error) {
	return s.submit(ctx, s.base, f)
}

func (s *ProductService) Update(ctx context.Context, id int64, f ProductForm) (models.Product, error) {
	return s.submit(ctx, fmt.Sprintf("%s/%d", s.base, id), f)
}

func (s *ProductService) submit(ctx context.Context, url string, f ProductForm) (models.Product, error) {
	body, contentType, err := client.EncodeForm(f.fields(), f.Photo)
	if err != nil {
		return models.Product{}, err
	}
	resp, err := s.c.Request(ctx, url, &client.Options{
		Method:      "POST",
		Body:        body,
		ContentType: contentType,
	})
	if err != nil {
		return models.Product{}, err
	}
	p, _ := models.NormalizeProduct(asRaw(resp))
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	_, err := s.c.JSON(ctx, "DELETE", fmt.Sprintf("%s/%d", s.base, id), nil)
	return err
}
