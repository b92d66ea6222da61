package seed

import (
	"os"
	"path/filepath"
	"testing"

	"envanter-cli/internal/config"
	"envanter-cli/internal/database"
	"envanter-cli/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const productsCSV = `sku,name,description,price,stock_quantity
SEED001,Kalem,Mavi tükenmez,4.50,100
SEED002,Defter,A4 çizgili,12.00,40
BOZUK01,Fiyatsız,,abc,5
SEED003,Silgi,,1.25,0
`

const suppliersCSV = `name,contact_person,email,phone
Anadolu Kırtasiye,Ali Demir,ali@anadolu.example,0212 000 00 00
Ege Dağıtım,,,
`

func newTestLoader(t *testing.T) (*Loader, *database.Store) {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	store, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewLoader(store, zap.NewNop()), store
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadProducts(t *testing.T) {
	l, store := newTestLoader(t)
	path := writeCSV(t, productsCSV)

	added, err := l.LoadProducts(path)
	require.NoError(t, err)
	// Bozuk fiyatlı satır atlanır
	assert.Equal(t, 3, added)

	var p models.Product
	require.NoError(t, store.DB.First(&p, "sku = ?", "SEED001").Error)
	assert.Equal(t, "Kalem", p.Name)
	assert.Equal(t, 100, p.StockQuantity)
}

func TestLoadProductsIdempotent(t *testing.T) {
	l, _ := newTestLoader(t)
	path := writeCSV(t, productsCSV)

	added, err := l.LoadProducts(path)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	// Tekrar yükleme yeni kayıt eklememeli
	added, err = l.LoadProducts(path)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestLoadSuppliers(t *testing.T) {
	l, store := newTestLoader(t)
	path := writeCSV(t, suppliersCSV)

	added, err := l.LoadSuppliers(path)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	var s models.Supplier
	require.NoError(t, store.DB.First(&s, "name = ?", "Anadolu Kırtasiye").Error)
	assert.Equal(t, "Ali Demir", s.ContactPerson)

	added, err = l.LoadSuppliers(path)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestLoadMissingFile(t *testing.T) {
	l, _ := newTestLoader(t)

	_, err := l.LoadProducts(filepath.Join(t.TempDir(), "yok.csv"))
	assert.Error(t, err)
}
