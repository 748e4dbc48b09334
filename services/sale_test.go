package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fondajosmar/fonda-client/models"
	"github.com/fondajosmar/fonda-client/services"
)

func TestRegisterRecomputesTotal(t *testing.T) {
	b := newBackend()
	var payload map[string]interface{}
	b.POST("/api/venta", func(c *gin.Context) {
		assert.NoError(t, c.ShouldBindJSON(&payload))
		c.JSON(http.StatusOK, gin.H{"id_venta": 31})
	})
	api := newTestAPI(t, b)

	sale := models.Sale{
		CustomerID: 7,
		EmployeeID: 2,
		Total:      999, // stale form state, must be ignored
		Details: []models.SaleDetail{
			{ProductID: 1, Quantity: 2, UnitPrice: 35},
			{ProductID: 2, Quantity: 3, UnitPrice: 20},
		},
	}
	created, err := api.Sales.Register(context.Background(), sale, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(31), created.ID)

	assert.Equal(t, 130.0, payload["total"])
	assert.Nil(t, payload["id_reserva"])
	details := payload["detalles"].([]interface{})
	if assert.Len(t, details, 2) {
		first := details[0].(map[string]interface{})
		assert.Equal(t, 1.0, first["id_producto"])
		nested := first["producto"].(map[string]interface{})
		assert.Equal(t, 1.0, nested["id_producto"])
		assert.Equal(t, 2.0, first["cantidad"])
		assert.Equal(t, 35.0, first["precio_unitario"])
	}
}

func TestRegisterBlocksBilledReservation(t *testing.T) {
	b := newBackend()
	api := newTestAPI(t, b)

	four := int64(4)
	existing := []models.Sale{{ID: 20, ReservationID: &four}}
	sale := models.Sale{
		CustomerID:    7,
		ReservationID: &four,
		Details:       []models.SaleDetail{{ProductID: 1, Quantity: 1, UnitPrice: 10}},
	}
	_, err := api.Sales.Register(context.Background(), sale, existing)
	assert.ErrorIs(t, err, services.ErrReservationBilled)
	assert.Zero(t, b.requests.Load(), "guard must not reach the transport")
}

func TestRegisterRejectsEmptyCart(t *testing.T) {
	b := newBackend()
	api := newTestAPI(t, b)

	_, err := api.Sales.Register(context.Background(), models.Sale{CustomerID: 7}, nil)
	assert.ErrorIs(t, err, services.ErrEmptyCart)
	assert.Zero(t, b.requests.Load())
}

func TestListDateFilter(t *testing.T) {
	b := newBackend()
	var fecha string
	var hasFilter bool
	b.GET("/api/venta", func(c *gin.Context) {
		fecha, hasFilter = c.GetQuery("fecha")
		c.JSON(http.StatusOK, []gin.H{})
	})
	api := newTestAPI(t, b)

	_, err := api.Sales.List(context.Background(), "2026-08-30")
	assert.NoError(t, err)
	assert.True(t, hasFilter)
	assert.Equal(t, "2026-08-30", fecha)

	_, err = api.Sales.List(context.Background(), "")
	assert.NoError(t, err)
	assert.False(t, hasFilter)
}

func TestTicketReturnsOpaqueBytes(t *testing.T) {
	b := newBackend()
	pdf := []byte("%PDF-1.4\nticket venta 31")
	b.GET("/api/venta/31/ticket", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/pdf", pdf)
	})
	api := newTestAPI(t, b)

	got, err := api.Sales.Ticket(context.Background(), 31)
	assert.NoError(t, err)
	assert.Equal(t, pdf, got)
}

func TestSaleDetailsBySale(t *testing.T) {
	b := newBackend()
	b.GET("/api/detalleventa/venta/31", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"id_detalle": 1, "id_producto": 9, "cantidad": 2, "precio_unitario": 75.25},
		})
	})
	api := newTestAPI(t, b)

	rows, err := api.SaleDetails.ListBySale(context.Background(), 31)
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Equal(t, int64(9), rows[0].ProductID)
		assert.Equal(t, 150.5, rows[0].Subtotal())
	}
}
