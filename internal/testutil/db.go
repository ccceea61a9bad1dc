// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"roomchat/internal/repository"
	"roomchat/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLiteDB opens a migrated store in a per-test temporary file.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "chat.db"), gormlogger.Silent)
	require.NoError(t, err)
	require.NoError(t, repository.InitSchema(db))
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
