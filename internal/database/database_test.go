package database_test

import (
	"fmt"
	"testing"

	"herbal/internal/database"
	"herbal/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteMigratesSchema(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(database.Config{Driver: database.DriverSQLite, DSN: dsn, Retries: 1})
	require.NoError(t, err)
	defer database.Close(db)

	for _, model := range []interface{}{&models.Plant{}, &models.VirtualTour{}, &models.UserBookmark{}, &models.UserNote{}} {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
	}
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := database.Open(database.Config{Driver: "mysql", DSN: "whatever"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpen_RequiresDSN(t *testing.T) {
	_, err := database.Open(database.Config{Driver: database.DriverPostgres})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DSN is required")
}
