// internal/repository/repository_test.go
package repository_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tienda/dispositivos-backend/internal/database"
	"github.com/tienda/dispositivos-backend/internal/models"
	"github.com/tienda/dispositivos-backend/internal/repository"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

func paginationParams(sort, order string) utils.PaginationParams {
	return utils.PaginationParams{Page: 1, Limit: 20, Sort: sort, Order: order}
}

var dbSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repository_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	return db
}

func newDevice(codigo string) *models.Dispositivo {
	return &models.Dispositivo{
		Codigo:      codigo,
		Nombre:      "Phone " + codigo,
		Descripcion: "A configurable phone",
		PrecioBase:  decimal.NewFromInt(100),
		Moneda:      "USD",
	}
}

func TestFindByIDReturnsNilWhenMissing(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewDispositivoRepository(db)

	found, err := repo.FindByID(9999)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestSavePreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewDispositivoRepository(db)

	entity := newDevice("D1")
	require.NoError(t, repo.Create(entity))

	stored, err := repo.FindByID(entity.ID)
	require.NoError(t, err)
	createdAt := stored.CreatedAt

	time.Sleep(10 * time.Millisecond)

	// Replacement entities built from request bodies never carry timestamps
	replacement := newDevice("D1")
	replacement.ID = entity.ID
	replacement.Nombre = "Phone D1 v2"
	require.NoError(t, repo.Save(replacement))

	reloaded, err := repo.FindByID(entity.ID)
	require.NoError(t, err)
	require.Equal(t, "Phone D1 v2", reloaded.Nombre)
	require.True(t, reloaded.CreatedAt.Equal(createdAt))
	require.True(t, reloaded.UpdatedAt.After(createdAt))
}

func TestDispositivoDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewDispositivoRepository(db)

	adicional := &models.Adicional{
		Nombre:      "Funda",
		Descripcion: "An extra",
		Precio:      decimal.NewFromInt(10),
	}
	require.NoError(t, db.Create(adicional).Error)

	entity := newDevice("D2")
	entity.Adicionales = []models.Adicional{{BaseModel: models.BaseModel{ID: adicional.ID}}}
	require.NoError(t, repo.Create(entity))

	caracteristica := &models.Caracteristica{Nombre: "Pantalla", DispositivoID: &entity.ID}
	require.NoError(t, db.Create(caracteristica).Error)

	personalizacion := &models.Personalizacion{Nombre: "Color", Descripcion: "Case color", DispositivoID: &entity.ID}
	require.NoError(t, db.Create(personalizacion).Error)

	opcion := &models.Opcion{
		Codigo:            "O1",
		Nombre:            "Rojo",
		PrecioAdicional:   decimal.NewFromInt(5),
		PersonalizacionID: &personalizacion.ID,
	}
	require.NoError(t, db.Create(opcion).Error)

	require.NoError(t, repo.DeleteByID(entity.ID))

	var count int64
	require.NoError(t, db.Model(&models.Caracteristica{}).Where("dispositivo_id = ?", entity.ID).Count(&count).Error)
	require.Zero(t, count)

	require.NoError(t, db.Model(&models.Personalizacion{}).Where("dispositivo_id = ?", entity.ID).Count(&count).Error)
	require.Zero(t, count)

	require.NoError(t, db.Model(&models.Opcion{}).Where("personalizacion_id = ?", personalizacion.ID).Count(&count).Error)
	require.Zero(t, count)

	require.NoError(t, db.Table("rel_dispositivo__adicionales").Where("dispositivo_id = ?", entity.ID).Count(&count).Error)
	require.Zero(t, count)

	// The add-on is an independent record and survives
	require.NoError(t, db.Model(&models.Adicional{}).Where("id = ?", adicional.ID).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestDispositivoSaveReplacesAdicionales(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewDispositivoRepository(db)

	a1 := &models.Adicional{Nombre: "Funda", Descripcion: "An extra", Precio: decimal.NewFromInt(10)}
	a2 := &models.Adicional{Nombre: "Cargador", Descripcion: "An extra", Precio: decimal.NewFromInt(20)}
	require.NoError(t, db.Create(a1).Error)
	require.NoError(t, db.Create(a2).Error)

	entity := newDevice("D3")
	entity.Adicionales = []models.Adicional{{BaseModel: models.BaseModel{ID: a1.ID}}}
	require.NoError(t, repo.Create(entity))

	replacement := newDevice("D3")
	replacement.ID = entity.ID
	replacement.Adicionales = []models.Adicional{{BaseModel: models.BaseModel{ID: a2.ID}}}
	require.NoError(t, repo.Save(replacement))

	reloaded, err := repo.FindByID(entity.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Adicionales, 1)
	require.Equal(t, a2.ID, reloaded.Adicionales[0].ID)
}

func TestPersonalizacionDeleteCascadesOpciones(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPersonalizacionRepository(db)

	personalizacion := &models.Personalizacion{Nombre: "Color", Descripcion: "Case color"}
	require.NoError(t, db.Create(personalizacion).Error)

	opcion := &models.Opcion{
		Codigo:            "O1",
		Nombre:            "Rojo",
		PrecioAdicional:   decimal.NewFromInt(5),
		PersonalizacionID: &personalizacion.ID,
	}
	require.NoError(t, db.Create(opcion).Error)

	require.NoError(t, repo.DeleteByID(personalizacion.ID))

	var count int64
	require.NoError(t, db.Model(&models.Opcion{}).Where("personalizacion_id = ?", personalizacion.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestVentaFindPreloadsUser(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, database.SeedInitialData(db))
	repo := repository.NewVentaRepository(db)

	userID := int64(2)
	venta := &models.Venta{FechaVenta: time.Now(), UserID: &userID}
	require.NoError(t, repo.Create(venta))

	reloaded, err := repo.FindByID(venta.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.User)
	require.Equal(t, "user", reloaded.User.Login)
}

func TestFindAllPaginatedRejectsUnknownSortField(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewDispositivoRepository(db)

	require.NoError(t, repo.Create(newDevice("B")))
	require.NoError(t, repo.Create(newDevice("A")))

	// Unknown sort fields fall back to id ordering
	entities, total, err := repo.FindAllPaginated(paginationParams("drop table", "asc"), []string{"id", "codigo"})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Equal(t, "B", entities[0].Codigo)

	entities, _, err = repo.FindAllPaginated(paginationParams("codigo", "asc"), []string{"id", "codigo"})
	require.NoError(t, err)
	require.Equal(t, "A", entities[0].Codigo)
}
