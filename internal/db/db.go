package db

import (
	"errors"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/config"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Visit{},
		&models.Project{},
		&models.Payment{},
		&models.Photo{},
		&models.MasterData{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedMasterData(db)

	return db
}

// seedMasterData garante a linha única de configuração no primeiro boot.
func seedMasterData(db *gorm.DB) {
	var md models.MasterData
	err := db.First(&md, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		md = models.DefaultMasterData()
		if err := db.Create(&md).Error; err != nil {
			log.Printf("failed to seed master data: %v", err)
		}
	}
}
