package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fondajosmar/fonda-client/services"
)

func TestConfirmAndCancelAreDedicatedEndpoints(t *testing.T) {
	b := newBackend()
	var hits []string
	b.PUT("/api/reserva/5/confirmar", func(c *gin.Context) {
		hits = append(hits, "confirmar")
		c.Status(http.StatusOK)
	})
	b.PUT("/api/reserva/5/cancelar", func(c *gin.Context) {
		hits = append(hits, "cancelar")
		c.Status(http.StatusOK)
	})
	api := newTestAPI(t, b)

	assert.NoError(t, api.Reservations.Confirm(context.Background(), 5))
	assert.NoError(t, api.Reservations.Cancel(context.Background(), 5))
	assert.Equal(t, []string{"confirmar", "cancelar"}, hits)
}

func TestReservationCreatePayloadShape(t *testing.T) {
	b := newBackend()
	var payload map[string]interface{}
	b.POST("/api/reserva", func(c *gin.Context) {
		assert.NoError(t, c.ShouldBindJSON(&payload))
		c.Status(http.StatusCreated)
	})
	api := newTestAPI(t, b)

	err := api.Reservations.Create(context.Background(), services.ReservationPayload{
		CustomerID: 7,
		Table:      services.TableRef{ID: 2},
		Date:       "2026-09-01",
		Time:       "18:30",
	})
	assert.NoError(t, err)
	assert.Equal(t, 7.0, payload["id_cliente"])
	mesa := payload["mesa"].(map[string]interface{})
	assert.Equal(t, 2.0, mesa["id_mesa"])
	assert.Equal(t, "2026-09-01", payload["fecha"])
	assert.Equal(t, "18:30", payload["hora"])
}

func TestReservationListDateFilter(t *testing.T) {
	b := newBackend()
	var fecha string
	b.GET("/api/reserva", func(c *gin.Context) {
		fecha = c.Query("fecha")
		c.JSON(http.StatusOK, []gin.H{{"id_reserva": 1, "fecha": "2026-08-30", "hora": "12:00"}})
	})
	api := newTestAPI(t, b)

	rows, err := api.Reservations.List(context.Background(), "2026-08-30")
	assert.NoError(t, err)
	assert.Equal(t, "2026-08-30", fecha)
	assert.Len(t, rows, 1)
}

func TestAvailableTables(t *testing.T) {
	b := newBackend()
	b.GET("/api/mesa/disponibles", func(c *gin.Context) {
		assert.Equal(t, "2026-09-01", c.Query("fecha"))
		c.JSON(http.StatusOK, []gin.H{{"id_mesa": 2, "numero": 4, "capacidad": 6, "ubicacion": "Terraza"}})
	})
	api := newTestAPI(t, b)

	rows, err := api.Tables.ListAvailable(context.Background(), "2026-09-01")
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, "Terraza", rows[0].Location)
		assert.Equal(t, 6, rows[0].Capacity)
	}
}
