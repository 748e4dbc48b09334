package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/models"
)

// ErrAttentionFields rejects attention creation before any network
// call when the sale or employee reference is missing.
var ErrAttentionFields = errors.New("faltan campos obligatorios (idVenta o idEmpleado)")

// AttentionService talks to the attention resource, which records the
// employee serving a sale.
type AttentionService struct {
	c    *client.Client
	base string
}

type attentionPayload struct {
	SaleID     int64 `json:"id_venta"`
	EmployeeID int64 `json:"id_empleado"`
}

func (s *AttentionService) List(ctx context.Context) ([]models.Attention, error) {
	resp, err := s.c.Request(ctx, s.base, nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeAttentions(resp), nil
}

func (s *AttentionService) Get(ctx context.Context, id int64) (models.Attention, error) {
	resp, err := s.c.Request(ctx, fmt.Sprintf("%s/%d", s.base, id), nil)
	if err != nil {
		return models.Attention{}, err
	}
	a, _ := models.NormalizeAttention(asRaw(resp))
	return a, nil
}

func (s *AttentionService) Create(ctx context.Context, saleID, employeeID int64) error {
	if saleID == 0 || employeeID == 0 {
		return ErrAttentionFields
	}
	_, err := s.c.JSON(ctx, "POST", s.base, attentionPayload{SaleID: saleID, EmployeeID: employeeID})
	return err
}

func (s *AttentionService) Delete(ctx context.Context, id int64) error {
	_, err := s.c.JSON(ctx, "DELETE", fmt.Sprintf("%s/%d", s.base, id), nil)
	return err
}

// EmployeeBySale returns the employee attending a sale.
func (s *AttentionService) EmployeeBySale(ctx context.Context, saleID int64) (models.Employee, error) {
	resp, err := s.c.Request(ctx, fmt.Sprintf("%s/venta/%d", s.base, saleID), nil)
	if err != nil {
		return models.Employee{}, err
	}
	e, _ := models.NormalizeEmployee(asRaw(resp))
	return e, nil
}
