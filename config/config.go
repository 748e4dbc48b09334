package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the base URLs of the four backend services plus the
// path of the local session database. Every URL points at the root of
// the service (no trailing slash); resource paths are appended by the
// service modules.
type Config struct {
	AuthBaseURL         string // login / register endpoints
	CustomerBaseURL     string // /api/cliente
	FondaBaseURL        string // /api/producto, /api/tipoproducto, /api/venta, /api/detalleventa
	ReservationsBaseURL string // /api/empleado, /api/mesa, /api/reserva, /api/atender
	SessionDBPath       string
}

// Load reads configuration from the environment, with development
// defaults matching the local service ports. A missing .env file is
// not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AuthBaseURL:         getEnv("FONDA_AUTH_URL", "http://localhost:8080/auth"),
		CustomerBaseURL:     getEnv("FONDA_CUSTOMER_URL", "http://localhost:8080/api/cliente"),
		FondaBaseURL:        getEnv("FONDA_API_URL", "http://localhost:7071/api"),
		ReservationsBaseURL: getEnv("FONDA_RESERVATIONS_URL", "http://localhost:6060/api"),
		SessionDBPath:       getEnv("FONDA_SESSION_DB", "fonda-session.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
