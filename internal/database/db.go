package database

import (
	"context"
	"fmt"
	"time"

	"goldencitizen-backend/internal/config"
	"goldencitizen-backend/internal/logger"
	"goldencitizen-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Init Postgres'e bağlanır ve şemayı migrate eder.
func Init(cfg *config.Config, log logger.Logger) (*gorm.DB, error) {
	db, err := Open(postgres.Open(cfg.DatabaseDSN), gormlogger.Warn)
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("bağlantı havuzu alınamadı: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("Veritabanı bağlantısı başarılı. Migration tamamlandı.", nil)
	return db, nil
}

// Open gorm oturumu açar. Testlerde sqlmock bağlantısıyla da kullanılır.
func Open(dialector gorm.Dialector, level gormlogger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.CompanyProfile{},
		&models.Property{},
		&models.Lead{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("AutoMigrate hatası: %w", err)
	}
	return nil
}

// Ping içerik deposunun ayakta olup olmadığını kontrol eder
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
