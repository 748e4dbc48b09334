package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fondajosmar/fonda-client/models"
)

// The auth service signs its tokens; this client has no verification
// key and treats claims as a best-effort fallback identity source, not
// as proof. Verification stays server-side.

func parseClaims(token string) jwt.MapClaims {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	claims, _ := parsed.Claims.(jwt.MapClaims)
	return claims
}

// fillFromClaims completes a session whose login payload lacked a
// username, role set or user id, using the token's claims. MapClaims
// is a plain JSON object, so the same normalization rules apply; the
// subject claim is the last resort for the username.
func fillFromClaims(s *models.Session) {
	if s.Token == "" {
		return
	}
	claims := parseClaims(s.Token)
	if claims == nil {
		return
	}

	fromToken := models.NormalizeSession(models.Raw(claims), "")
	if s.Username == "" {
		s.Username = fromToken.Username
	}
	if s.Username == "" {
		if sub, err := claims.GetSubject(); err == nil {
			s.Username = sub
		}
	}
	if len(s.Roles) == 0 {
		s.Roles = fromToken.Roles
	}
	if s.UserID == nil {
		s.UserID = fromToken.UserID
	}
}

func tokenExpired(token string) bool {
	claims := parseClaims(token)
	if claims == nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}
