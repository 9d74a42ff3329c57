// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tienda/dispositivos-backend/internal/config"
	"github.com/tienda/dispositivos-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Failed to close database connection")
	} else {
		logrus.Info("Database connection closed")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Dispositivo{},
		&models.Caracteristica{},
		&models.Personalizacion{},
		&models.Opcion{},
		&models.Adicional{},
		&models.Venta{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_dispositivos_codigo ON dispositivos(codigo)",
		"CREATE INDEX IF NOT EXISTS idx_dispositivos_moneda ON dispositivos(moneda)",

		"CREATE INDEX IF NOT EXISTS idx_caracteristicas_dispositivo ON caracteristicas(dispositivo_id)",
		"CREATE INDEX IF NOT EXISTS idx_personalizacions_dispositivo ON personalizacions(dispositivo_id)",
		"CREATE INDEX IF NOT EXISTS idx_opcions_personalizacion ON opcions(personalizacion_id)",

		"CREATE INDEX IF NOT EXISTS idx_ventas_user ON ventas(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_ventas_fecha ON ventas(fecha_venta DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to create index: %s", index)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// SeedInitialData creates the default accounts when the user table is empty.
func SeedInitialData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	logrus.Info("Seeding initial data...")

	// Both accounts are created atomically so a failed boot never leaves a
	// half-seeded user table behind.
	err := WithTransaction(db, func(tx *gorm.DB) error {
		admin := &models.User{
			Login:       "admin",
			Email:       "admin@localhost",
			FirstName:   "Administrator",
			LastName:    "Administrator",
			Activated:   true,
			Authorities: pq.StringArray{models.AuthorityAdmin, models.AuthorityUser},
		}
		if err := admin.SetPassword("admin"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		user := &models.User{
			Login:       "user",
			Email:       "user@localhost",
			FirstName:   "User",
			LastName:    "User",
			Activated:   true,
			Authorities: pq.StringArray{models.AuthorityUser},
		}
		if err := user.SetPassword("user"); err != nil {
			return fmt.Errorf("failed to set user password: %w", err)
		}
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create default user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.Info("Initial data seeding completed")
	return nil
}

// WithTransaction runs fn inside a transaction, rolling back on error or panic.
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
