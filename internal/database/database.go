package database

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/signbook/internal/database/settings"
	"github.com/mrlokans/signbook/internal/entities"
	"github.com/mrlokans/signbook/internal/kvstore"
)

type Database struct {
	DB       *gorm.DB
	settings *settings.Repository
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Setting{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{
		DB:       db,
		settings: settings.NewRepository(db),
	}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is alive.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Get implements kvstore.Store on top of the settings table.
func (d *Database) Get(key string) ([]byte, error) {
	setting, err := d.settings.GetSetting(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, kvstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read setting %s: %w", key, err)
	}
	return []byte(setting.Value), nil
}

// Set implements kvstore.Store on top of the settings table.
func (d *Database) Set(key string, value []byte) error {
	if err := d.settings.SetSetting(key, string(value)); err != nil {
		return fmt.Errorf("write setting %s: %w", key, err)
	}
	return nil
}

// Delete implements kvstore.Store on top of the settings table.
func (d *Database) Delete(key string) error {
	if err := d.settings.DeleteSetting(key); err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}
