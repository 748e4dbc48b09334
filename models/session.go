package models

import "strings"

// Session is the normalized authenticated identity. It is created from
// whatever object the auth service returns on login and persisted in
// the local session database.
type Session struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	UserID   *int64   `json:"idUsuario,omitempty"`
	Token    string   `json:"-"`
}

// NormalizeSession builds a Session from the raw login response.
// Field priority:
//
//	username: username > userName > nombreUsuario
//	roles:    roles > authorities (strings, or objects with "authority")
//	user id:  idUsuario > id_usuario > id_usuario_fk > id
func NormalizeSession(raw Raw, token string) Session {
	s := Session{
		Username: stringField(raw, "username", "userName", "nombreUsuario"),
		Roles:    rolesField(raw, "roles", "authorities"),
		Token:    token,
	}
	if id, ok := intField(raw, "idUsuario", "id_usuario", "id_usuario_fk", "id"); ok {
		s.UserID = &id
	}
	return s
}

// rolesField accepts a role list either as plain strings or as Spring
// authority objects ({"authority": "ROLE_ADMIN"}).
func rolesField(m Raw, keys ...string) []string {
	for _, k := range keys {
		items, ok := m[k].([]interface{})
		if !ok {
			continue
		}
		roles := make([]string, 0, len(items))
		for _, it := range items {
			switch v := it.(type) {
			case string:
				if v != "" {
					roles = append(roles, v)
				}
			case map[string]interface{}:
				if a, _ := v["authority"].(string); a != "" {
					roles = append(roles, a)
				}
			}
		}
		if len(roles) > 0 {
			return roles
		}
	}
	return []string{}
}

// ExtractToken finds the bearer token in a login response.
// Priority: token > jwt > accessToken.
func ExtractToken(raw Raw) string {
	return stringField(raw, "token", "jwt", "accessToken")
}

// Valid reports whether the session carries enough identity to be
// usable. A persisted payload without a username is discarded.
func (s Session) Valid() bool {
	return strings.TrimSpace(s.Username) != ""
}
