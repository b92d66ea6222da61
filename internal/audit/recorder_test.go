package audit

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"envanter-cli/internal/config"
	"envanter-cli/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	store, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewRecorder(store, zap.NewNop())
}

func TestRecordAndList(t *testing.T) {
	r := newTestRecorder(t)

	require.NoError(t, r.Record("admin", "login", nil))
	require.NoError(t, r.Record("admin", "backup_created", map[string]interface{}{
		"path": "/tmp/backup_x.db",
	}))

	entries, err := r.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// En yeni kayıt başta
	assert.Equal(t, "backup_created", entries[0].Action)
	assert.Equal(t, "login", entries[1].Action)
	assert.Equal(t, "admin", entries[0].User)
	assert.False(t, entries[0].CreatedAt.IsZero())

	var details map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(entries[0].Details), &details))
	assert.Equal(t, "/tmp/backup_x.db", details["path"])
}

func TestListLimit(t *testing.T) {
	r := newTestRecorder(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, r.Record("admin", "stok_guncelleme", nil))
	}

	entries, err := r.List(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRecordWithoutDetails(t *testing.T) {
	r := newTestRecorder(t)

	require.NoError(t, r.Record("admin", "logout", nil))

	entries, err := r.List(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Details)
}
