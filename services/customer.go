package services

import (
	"context"
	"fmt"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/models"
)

// CustomerService talks to the customer resource.
type CustomerService struct {
	c    *client.Client
	base string
	auth *AuthService
}

// CustomerPayload is the outgoing customer shape. The id is omitted on
// creation.
type CustomerPayload struct {
	ID    int64  `json:"id_cliente,omitempty"`
	Name  string `json:"nombre_cliente"`
	Phone string `json:"telefono_cliente"`
	Email string `json:"correo_cliente"`
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	resp, err := s.c.Request(ctx, s.base, nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeCustomers(resp), nil
}

func (s *CustomerService) Create(ctx context.Context, p CustomerPayload) (models.Customer, error) {
	resp, err := s.c.JSON(ctx, "POST", s.base, p)
	if err != nil {
		return models.Customer{}, err
	}
	created, ok := models.NormalizeCustomer(asRaw(resp))
	if !ok {
		return models.Customer{}, fmt.Errorf("could not resolve the id of the created customer")
	}
	return created, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, p CustomerPayload) error {
	p.ID = id
	_, err := s.c.JSON(ctx, "PUT", fmt.Sprintf("%s/%d", s.base, id), p)
	return err
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	_, err := s.c.JSON(ctx, "DELETE", fmt.Sprintf("%s/%d", s.base, id), nil)
	return err
}

// CreateWithCredential creates the customer record and then registers
// a login credential bound to it, username defaulting to the email
// (or the name when no email) with the fixed temporary password.
// A failure after the customer record committed is reported as a
// ProvisioningError; the record is not rolled back.
func (s *CustomerService) CreateWithCredential(ctx context.Context, p CustomerPayload) (models.Customer, error) {
	created, err := s.Create(ctx, p)
	if err != nil {
		return models.Customer{}, err
	}

	username := created.Email
	if username == "" {
		username = created.Name
	}
	_, err = s.auth.RegisterCustomerUser(ctx, created.ID, Credentials{
		Username: username,
		Password: TempPassword,
	})
	if err != nil {
		return created, &ProvisioningError{
			Step:     "register customer credential",
			RecordID: created.ID,
			Err:      err,
		}
	}
	return created, nil
}

func asRaw(v interface{}) models.Raw {
	m, _ := v.(map[string]interface{})
	return m
}
