// internal/database/connection_test.go
package database_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tienda/dispositivos-backend/internal/database"
	"github.com/tienda/dispositivos-backend/internal/models"
)

var dbSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logrus.SetLevel(logrus.ErrorLevel)

	dsn := fmt.Sprintf("file:connection_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

// The sales model pins its table name, so the migration must produce a
// "ventas" table the hand-written index DDL can target.
func TestRunMigrationsCreatesVentasTable(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, database.RunMigrations(db))

	assert.True(t, db.Migrator().HasTable("ventas"))
	assert.True(t, db.Migrator().HasIndex(&models.Venta{}, "idx_ventas_user"))
	assert.True(t, db.Migrator().HasIndex(&models.Venta{}, "idx_ventas_fecha"))

	var count int64
	assert.NoError(t, db.Table("ventas").Count(&count).Error)
}

func TestSeedInitialDataIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, database.RunMigrations(db))

	require.NoError(t, database.SeedInitialData(db))
	require.NoError(t, database.SeedInitialData(db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var admin models.User
	require.NoError(t, db.Where("login = ?", "admin").First(&admin).Error)
	assert.True(t, admin.HasAuthority(models.AuthorityAdmin))
	assert.NoError(t, admin.CheckPassword("admin"))
}
