package dto

import (
	"encoding/json"
	"os"
	"testing"

	"go-cartmaster/modules/card/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCard() *model.Card {
	return &model.Card{
		ID:             10,
		Number:         "4111111111111111",
		Expiration:     "12/2030",
		Network:        "VISA",
		Status:         model.StatusActive,
		TotalLimit:     decimal.RequireFromString("1000.50"),
		AvailableLimit: decimal.RequireFromString("250"),
		UsedLimit:      decimal.Zero,
		OwnerID:        1,
		Owner:          model.Owner{ID: 1, Name: "Ana", Email: "ana@gmail.com"},
	}
}

func TestMain(m *testing.M) {
	// application.New ตั้งค่านี้ตอน start
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func TestCardResponseJSON(t *testing.T) {
	b, err := json.Marshal(NewCardResponse(sampleCard()))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"tarjetaId": 10,
		"tarjetaNumero": "4111111111111111",
		"tarjetaFechaVencimiento": "12/2030",
		"tarjetaFranquicia": "VISA",
		"tarjetaEstado": "ACTIVO",
		"tarjetaCupoTotal": 1000.5,
		"tarjetaCupoDisponible": 250,
		"tarjetaCupoUtilizado": 0,
		"cliente": {"clienteId": 1, "clienteNombre": "Ana", "clienteCorreo": "ana@gmail.com"}
	}`, string(b))
}

func TestCardWithOwnerResponseJSON(t *testing.T) {
	b, err := json.Marshal(NewCardWithOwnerResponse(sampleCard()))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"tarjetaId": 10,
		"numeroTarjeta": "4111111111111111",
		"fechaVencimiento": "12/2030",
		"franquicia": "VISA",
		"estado": "ACTIVO",
		"cupoTotal": 1000.5,
		"cupoDisponible": 250,
		"cupoUtilizado": 0,
		"cliente": {"id": 1, "nombre": "Ana", "correo": "ana@gmail.com"}
	}`, string(b))
}
