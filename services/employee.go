package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/models"
	"github.com/fondajosmar/fonda-client/utils"
)

// ErrPasswordRequired rejects employee creation before any network
// call when the password is empty or whitespace-only.
var ErrPasswordRequired = errors.New("el password es obligatorio")

// EmployeeService talks to the employee resource of the reservations
// service and drives the two-service provisioning sequence.
type EmployeeService struct {
	c    *client.Client
	base string
	auth *AuthService
}

// EmployeePayload is the outgoing employee shape.
type EmployeePayload struct {
	Name     string
	Position string
	Status   int
	Password string
}

func (p EmployeePayload) body(includePassword bool) map[string]interface{} {
	m := map[string]interface{}{
		"nombre":  strings.TrimSpace(p.Name),
		"puesto":  strings.TrimSpace(p.Position),
		"estatus": p.Status,
	}
	if includePassword {
		m["password"] = p.Password
	}
	return m
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	resp, err := s.c.Request(ctx, s.base, nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeEmployees(resp), nil
}

// ListActiveWaiters returns the waiters eligible to be attributed a
// sale.
func (s *EmployeeService) ListActiveWaiters(ctx context.Context) ([]models.Employee, error) {
	resp, err := s.c.Request(ctx, s.base+"/meseros", nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeEmployees(resp), nil
}

// Create requires a non-blank password; the check is local and no
// request is made when it fails.
func (s *EmployeeService) Create(ctx context.Context, p EmployeePayload) (models.Employee, error) {
	if strings.TrimSpace(p.Password) == "" {
		return models.Employee{}, ErrPasswordRequired
	}
	resp, err := s.c.JSON(ctx, "POST", s.base, p.body(true))
	if err != nil {
		return models.Employee{}, err
	}
	created, ok := models.NormalizeEmployee(asRaw(resp))
	if !ok {
		return models.Employee{}, fmt.Errorf("could not resolve the id of the created employee")
	}
	return created, nil
}

// Update sends the employee fields; a blank password is omitted from
// the payload entirely so the stored credential is not overwritten.
func (s *EmployeeService) Update(ctx context.Context, id int64, p EmployeePayload) error {
	includePassword := strings.TrimSpace(p.Password) != ""
	_, err := s.c.JSON(ctx, "PUT", fmt.Sprintf("%s/%d", s.base, id), p.body(includePassword))
	return err
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	_, err := s.c.JSON(ctx, "DELETE", fmt.Sprintf("%s/%d", s.base, id), nil)
	return err
}

// Link fills the employee's user reference after provisioning.
func (s *EmployeeService) Link(ctx context.Context, employeeID, userID int64) error {
	_, err := s.c.JSON(ctx, "PUT", fmt.Sprintf("%s/%d/vincular-usuario/%d", s.base, employeeID, userID), nil)
	return err
}

// ProvisioningError reports a partial failure of a multi-step
// provisioning sequence. Steps already committed remotely are NOT
// rolled back; CredentialID and RecordID name the orphaned state so an
// operator can clean up.
type ProvisioningError struct {
	Step         string
	CredentialID int64
	RecordID     int64
	Err          error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning failed at %s: %v", e.Step, e.Err)
}

func (e *ProvisioningError) Unwrap() error { return e.Err }

// Provision runs the three-step employee creation: register a
// credential in the auth service under a generated username and the
// fixed temporary password, create the employee record, then link the
// two. Any step's failure aborts the remaining steps.
func (s *EmployeeService) Provision(ctx context.Context, name, position string) (models.Employee, string, error) {
	username := GenerateUsername(name, position)

	userRaw, err := s.auth.RegisterEmployeeUser(ctx, Credentials{
		Username: username,
		Password: TempPassword,
		Position: AuthPositionLabel(position),
	})
	if err != nil {
		return models.Employee{}, "", err
	}
	userID, ok := UserIDFrom(userRaw)
	if !ok {
		return models.Employee{}, "", fmt.Errorf("could not resolve the user id of the registered credential")
	}

	created, err := s.Create(ctx, EmployeePayload{
		Name:     name,
		Position: position,
		Status:   1,
		Password: TempPassword,
	})
	if err != nil {
		perr := &ProvisioningError{Step: "create employee record", CredentialID: userID, Err: err}
		logProvisioning(perr)
		return models.Employee{}, "", perr
	}

	if err := s.Link(ctx, created.ID, userID); err != nil {
		perr := &ProvisioningError{
			Step:         "link employee to credential",
			CredentialID: userID,
			RecordID:     created.ID,
			Err:          err,
		}
		logProvisioning(perr)
		return created, username, perr
	}
	return created, username, nil
}

func logProvisioning(e *ProvisioningError) {
	if utils.ErrorLogger != nil {
		utils.ErrorLogger.Errorf("%v (orphaned credential=%d record=%d)", e, e.CredentialID, e.RecordID)
	}
}

var usernameSpaces = regexp.MustCompile(`\s+`)

// GenerateUsername derives a system username from an employee's name
// and position: lowercase, whitespace collapsed to dots, suffixed with
// the lowercase position ("Ana Ruiz", "MESERO" -> "ana.ruiz.mesero").
func GenerateUsername(name, position string) string {
	base := usernameSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), ".")
	if base == "" {
		base = "empleado"
	}
	p := strings.ToLower(strings.TrimSpace(position))
	if p == "" {
		return base
	}
	return base + "." + p
}

// AuthPositionLabel maps a stored position to the label the auth
// service's registration switch expects.
func AuthPositionLabel(position string) string {
	switch strings.ToUpper(position) {
	case models.PositionWaiter:
		return "Mesero"
	case models.PositionCashier:
		return "Cajero"
	case models.PositionSupervisor:
		return "Supervisor"
	case models.PositionAdmin:
		return "Administrador"
	case models.PositionCook:
		return "Cocinero"
	default:
		return position
	}
}
