package backup

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"envanter-cli/internal/config"
	"envanter-cli/internal/database"
	"envanter-cli/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEnv(t *testing.T) (*Manager, *database.Store) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		DBPath:              filepath.Join(dir, "inventory.db"),
		BackupDir:           filepath.Join(dir, "backups"),
		BackupRetentionDays: 7,
	}
	store, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewManager(store, cfg, zap.NewNop()), store
}

func addProduct(t *testing.T, store *database.Store, sku string, stock int) {
	t.Helper()
	p := models.Product{
		SKU:           sku,
		Name:          "Ürün " + sku,
		Price:         decimal.NewFromInt(10),
		StockQuantity: stock,
	}
	require.NoError(t, store.DB.Create(&p).Error)
}

func getStock(t *testing.T, store *database.Store, sku string) int {
	t.Helper()
	var p models.Product
	require.NoError(t, store.DB.First(&p, "sku = ?", sku).Error)
	return p.StockQuantity
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("cok gizli depo icerigi 0123456789")

	artifact, err := encrypt(plaintext, "parola")
	require.NoError(t, err)

	decrypted, err := decrypt(artifact, "parola")
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestDecryptWithWrongPassphrase(t *testing.T) {
	artifact, err := encrypt([]byte("veri"), "dogru")
	require.NoError(t, err)

	_, err = decrypt(artifact, "yanlis")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	m, store := newTestEnv(t)
	addProduct(t, store, "DEMO001", 10)

	path, err := m.Create("parola")
	require.NoError(t, err)
	require.FileExists(t, path)

	// Yedekten sonra depoyu değiştir
	require.NoError(t, store.DB.Model(&models.Product{}).
		Where("sku = ?", "DEMO001").Update("stock_quantity", 99).Error)
	addProduct(t, store, "SONRADAN1", 1)

	require.NoError(t, m.Restore(path, "parola"))

	// Geri yükleme yedek anındaki durumu getirmeli
	assert.Equal(t, 10, getStock(t, store, "DEMO001"))
	var count int64
	require.NoError(t, store.DB.Model(&models.Product{}).Where("sku = ?", "SONRADAN1").Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRestoreWrongPassphraseLeavesStoreUntouched(t *testing.T) {
	m, store := newTestEnv(t)
	addProduct(t, store, "DEMO001", 10)

	path, err := m.Create("parola")
	require.NoError(t, err)

	require.NoError(t, store.DB.Model(&models.Product{}).
		Where("sku = ?", "DEMO001").Update("stock_quantity", 42).Error)

	err = m.Restore(path, "yanlis")
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	// Canlı depoya dokunulmamalı
	assert.Equal(t, 42, getStock(t, store, "DEMO001"))
}

func TestRestoreRejectsTamperedArtifact(t *testing.T) {
	m, store := newTestEnv(t)
	addProduct(t, store, "DEMO001", 10)

	path, err := m.Create("parola")
	require.NoError(t, err)

	// Şifreli gövdede tek bir baytı değiştir
	artifact, err := os.ReadFile(path)
	require.NoError(t, err)
	artifact[len(artifact)/2] ^= 0x01
	tamperedPath := path + ".bozuk"
	require.NoError(t, os.WriteFile(tamperedPath, artifact, 0o600))

	err = m.Restore(tamperedPath, "parola")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Equal(t, 10, getStock(t, store, "DEMO001"))
}

func TestArtifactDoesNotLeakPlaintextOrPassphrase(t *testing.T) {
	m, store := newTestEnv(t)
	addProduct(t, store, "DEMO001", 10)

	path, err := m.Create("cok-gizli-parola")
	require.NoError(t, err)

	artifact, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(artifact, []byte("DEMO001")))
	assert.False(t, bytes.Contains(artifact, []byte("cok-gizli-parola")))
}

func TestCreateRequiresPassphrase(t *testing.T) {
	m, store := newTestEnv(t)
	addProduct(t, store, "DEMO001", 10)

	_, err := m.Create("")
	assert.Error(t, err)
}

func TestListBackups(t *testing.T) {
	m, store := newTestEnv(t)
	addProduct(t, store, "DEMO001", 10)

	// Henüz yedek yokken boş liste
	backups, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, backups)

	path, err := m.Create("parola")
	require.NoError(t, err)

	backups, err = m.List()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, filepath.Base(path), backups[0].Name)
	assert.Equal(t, path, backups[0].Path)
	assert.Greater(t, backups[0].Size, int64(0))
}

func TestBackupFilePermissions(t *testing.T) {
	m, store := newTestEnv(t)
	addProduct(t, store, "DEMO001", 10)

	path, err := m.Create("parola")
	require.NoError(t, err)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	di, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), di.Mode().Perm())
}

func TestStoreUsableAfterRestore(t *testing.T) {
	m, store := newTestEnv(t)
	addProduct(t, store, "DEMO001", 10)

	path, err := m.Create("parola")
	require.NoError(t, err)
	require.NoError(t, m.Restore(path, "parola"))

	// Geri yüklemeden sonra depo yazılabilir olmalı
	addProduct(t, store, "YENI001", 3)
	assert.Equal(t, 3, getStock(t, store, "YENI001"))
}
