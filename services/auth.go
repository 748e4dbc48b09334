package services

import (
	"context"
	"fmt"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/models"
)

// TempPassword is the fixed initial password assigned to credentials
// created during provisioning. The auth service forces a change on
// first login.
const TempPassword = "12345678"

// AuthService talks to the authentication endpoints.
type AuthService struct {
	c    *client.Client
	base string
}

// Credentials is a login or registration request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Position string `json:"puesto,omitempty"`
}

// Login authenticates and returns the raw producer-controlled response
// object; pass it to session.Store.Login together with ExtractToken.
func (a *AuthService) Login(ctx context.Context, username, password string) (models.Raw, error) {
	resp, err := a.c.JSON(ctx, "POST", a.base+"/login", Credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	raw, _ := resp.(map[string]interface{})
	return raw, nil
}

// Register creates a plain credential.
func (a *AuthService) Register(ctx context.Context, creds Credentials) (models.Raw, error) {
	resp, err := a.c.JSON(ctx, "POST", a.base+"/register", creds)
	if err != nil {
		return nil, err
	}
	raw, _ := resp.(map[string]interface{})
	return raw, nil
}

// RegisterEmployeeUser creates a credential for a staff member and
// returns the raw response; the new user id is resolved with
// UserIDFrom.
func (a *AuthService) RegisterEmployeeUser(ctx context.Context, creds Credentials) (models.Raw, error) {
	resp, err := a.c.JSON(ctx, "POST", a.base+"/register/empleado", creds)
	if err != nil {
		return nil, err
	}
	raw, _ := resp.(map[string]interface{})
	return raw, nil
}

// RegisterCustomerUser creates a credential linked to an existing
// customer record.
func (a *AuthService) RegisterCustomerUser(ctx context.Context, customerID int64, creds Credentials) (models.Raw, error) {
	resp, err := a.c.JSON(ctx, "POST", fmt.Sprintf("%s/register/cliente/%d", a.base, customerID), creds)
	if err != nil {
		return nil, err
	}
	raw, _ := resp.(map[string]interface{})
	return raw, nil
}

// UserIDFrom resolves the new user id out of a registration response.
// Field priority: id > id_usuario > idUsuario.
func UserIDFrom(raw models.Raw) (int64, bool) {
	return models.IntField(raw, "id", "id_usuario", "idUsuario")
}
