package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/maxaizer/jobboard/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	if dir := filepath.Dir(connectionString); !isMemory(connectionString) && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

// isMemory reports DSNs that do not name a plain file path.
func isMemory(connectionString string) bool {
	return connectionString == ":memory:" || strings.HasPrefix(connectionString, "file:")
}

func (c *DbContext) Migrate() error {
	if err := c.DB.AutoMigrate(entities.JobSnapshot{}); err != nil {
		return fmt.Errorf("failed to migrate JobSnapshot entity: %w", err)
	}

	if err := c.DB.AutoMigrate(entities.SyncRun{}); err != nil {
		return fmt.Errorf("failed to migrate SyncRun entity: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
