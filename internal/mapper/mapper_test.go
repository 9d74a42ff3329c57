// internal/mapper/mapper_test.go
package mapper

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/models"
)

func TestDispositivoRoundTrip(t *testing.T) {
	entity := &models.Dispositivo{
		BaseModel:   models.BaseModel{ID: 7},
		Codigo:      "D1",
		Nombre:      "Phone",
		Descripcion: "A configurable phone",
		PrecioBase:  decimal.NewFromFloat(100.50),
		Moneda:      "USD",
		Adicionales: []models.Adicional{
			{BaseModel: models.BaseModel{ID: 3}, Nombre: "Funda"},
		},
	}

	d := ToDispositivoDTO(entity)
	require.NotNil(t, d)
	assert.Equal(t, int64(7), *d.ID)
	assert.Equal(t, "D1", *d.Codigo)
	assert.True(t, entity.PrecioBase.Equal(*d.PrecioBase))

	// Linked add-ons come back as identity projections
	require.Len(t, d.Adicionales, 1)
	assert.Equal(t, int64(3), *d.Adicionales[0].ID)
	assert.Nil(t, d.Adicionales[0].Nombre)

	back := ToDispositivoEntity(d)
	assert.Equal(t, entity.ID, back.ID)
	assert.Equal(t, entity.Codigo, back.Codigo)
	assert.Equal(t, entity.Nombre, back.Nombre)
	assert.True(t, entity.PrecioBase.Equal(back.PrecioBase))
	require.Len(t, back.Adicionales, 1)
	assert.Equal(t, int64(3), back.Adicionales[0].ID)
}

func TestDispositivoEntitySkipsAdicionalesWithoutID(t *testing.T) {
	nombre := "Funda"
	d := &dto.DispositivoDTO{
		Adicionales: []dto.AdicionalDTO{{Nombre: &nombre}},
	}

	e := ToDispositivoEntity(d)
	assert.Empty(t, e.Adicionales)
}

func TestVentaDTOUsesUserProjection(t *testing.T) {
	userID := int64(2)
	entity := &models.Venta{
		BaseModel:  models.BaseModel{ID: 1},
		FechaVenta: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
		UserID:     &userID,
		User: &models.User{
			BaseModel: models.BaseModel{ID: 2},
			Login:     "user",
			Email:     "user@localhost",
		},
	}

	d := ToVentaDTO(entity)
	require.NotNil(t, d)
	require.NotNil(t, d.User)
	assert.Equal(t, int64(2), *d.User.ID)
	assert.Equal(t, "user", *d.User.Login)
}

func TestVentaDTOFallsBackToUserID(t *testing.T) {
	userID := int64(5)
	entity := &models.Venta{
		BaseModel:  models.BaseModel{ID: 1},
		FechaVenta: time.Now(),
		UserID:     &userID,
	}

	d := ToVentaDTO(entity)
	require.NotNil(t, d.User)
	assert.Equal(t, int64(5), *d.User.ID)
	assert.Nil(t, d.User.Login)
}

func TestVentaEntityCarriesUserReference(t *testing.T) {
	id := int64(9)
	userID := int64(2)
	fecha := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	d := &dto.VentaDTO{
		ID:         &id,
		FechaVenta: &fecha,
		User:       &dto.UserDTO{ID: &userID},
	}

	e := ToVentaEntity(d)
	assert.Equal(t, int64(9), e.ID)
	assert.Equal(t, fecha, e.FechaVenta)
	require.NotNil(t, e.UserID)
	assert.Equal(t, int64(2), *e.UserID)
	assert.Nil(t, e.User)
}

func TestCaracteristicaOmitsEmptyDescripcion(t *testing.T) {
	entity := &models.Caracteristica{
		BaseModel: models.BaseModel{ID: 4},
		Nombre:    "Pantalla",
	}

	d := ToCaracteristicaDTO(entity)
	assert.Nil(t, d.Descripcion)
	assert.Nil(t, d.Dispositivo)
}

func TestOpcionCarriesPersonalizacionReference(t *testing.T) {
	persID := int64(11)
	entity := &models.Opcion{
		BaseModel:         models.BaseModel{ID: 6},
		Codigo:            "O1",
		Nombre:            "Rojo",
		PrecioAdicional:   decimal.NewFromInt(5),
		PersonalizacionID: &persID,
	}

	d := ToOpcionDTO(entity)
	require.NotNil(t, d.Personalizacion)
	assert.Equal(t, int64(11), *d.Personalizacion.ID)

	back := ToOpcionEntity(d)
	require.NotNil(t, back.PersonalizacionID)
	assert.Equal(t, int64(11), *back.PersonalizacionID)
}

func TestNilInputsMapToNil(t *testing.T) {
	assert.Nil(t, ToDispositivoDTO(nil))
	assert.Nil(t, ToDispositivoEntity(nil))
	assert.Nil(t, ToVentaDTO(nil))
	assert.Nil(t, ToCaracteristicaDTO(nil))
	assert.Nil(t, ToUserIDDTO(nil))
}
