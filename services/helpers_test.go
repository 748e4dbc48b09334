package services_test

import (
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/config"
	"github.com/fondajosmar/fonda-client/services"
	"github.com/fondajosmar/fonda-client/utils"
)

// backend is a gin router standing in for the remote services, with a
// request counter so tests can assert that local rejections make no
// network call.
type backend struct {
	*gin.Engine
	requests atomic.Int64
}

func newBackend() *backend {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	b := &backend{Engine: gin.New()}
	b.Use(func(c *gin.Context) {
		b.requests.Add(1)
		c.Next()
	})
	return b
}

func newTestAPI(t *testing.T, b *backend) *services.API {
	t.Helper()
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		AuthBaseURL:         srv.URL + "/auth",
		CustomerBaseURL:     srv.URL + "/api/cliente",
		FondaBaseURL:        srv.URL + "/api",
		ReservationsBaseURL: srv.URL + "/api",
	}
	return services.New(client.New(nil), cfg)
}
