package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the sqlite database and runs auto-migration for every model.
// databasePath falls back to victoriaclean.db when empty.
func Init(databasePath string) (*gorm.DB, error) {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "victoriaclean.db"
	}

	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// duplicate unique keys surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(gdb); err != nil {
		return nil, err
	}

	return gdb, nil
}

// AutoMigrate creates or updates tables for all models.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&Admin{},
		&Blog{},
		&Service{},
		&SubService{},
		&TeamMember{},
		&Founder{},
		&Testimonial{},
		&GalleryItem{},
		&Feature{},
		&Company{},
		&Contact{},
		&ContactInfo{},
		&AboutPage{},
		&AboutCategory{},
		&AboutSection{},
	)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
