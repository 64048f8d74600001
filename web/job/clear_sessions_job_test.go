package job

import (
	"os"
	"testing"
	"time"

	"ttcloud/database"
	"ttcloud/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger(logging.ERROR)
	os.Exit(m.Run())
}

func TestClearSessionsJob(t *testing.T) {
	dbPath := "test.db"
	os.Remove(dbPath)
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() {
		db, _ := database.GetDB().DB()
		db.Close()
		os.Remove(dbPath)
	})

	db := database.GetDB()

	// Same schema the cookie-session store migrates on startup.
	require.NoError(t, db.Exec(
		`CREATE TABLE sessions (id TEXT PRIMARY KEY, data TEXT, created_at DATETIME, updated_at DATETIME, expires_at DATETIME)`,
	).Error)

	now := time.Now()
	require.NoError(t, db.Exec(
		`INSERT INTO sessions (id, data, created_at, updated_at, expires_at) VALUES (?, ?, ?, ?, ?)`,
		"expired", "{}", now.Add(-48*time.Hour), now.Add(-48*time.Hour), now.Add(-24*time.Hour),
	).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO sessions (id, data, created_at, updated_at, expires_at) VALUES (?, ?, ?, ?, ?)`,
		"live", "{}", now, now, now.Add(24*time.Hour),
	).Error)

	NewClearSessionsJob().Run()

	var ids []string
	require.NoError(t, db.Raw(`SELECT id FROM sessions`).Scan(&ids).Error)
	assert.Equal(t, []string{"live"}, ids)
}
