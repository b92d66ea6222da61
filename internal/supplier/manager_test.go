package supplier

import (
	"path/filepath"
	"testing"

	"envanter-cli/internal/config"
	"envanter-cli/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	store, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewManager(store, zap.NewNop())
}

func TestAddAndGetSupplier(t *testing.T) {
	m := newTestManager(t)

	s, err := m.Add("Anadolu Gıda", "Ayşe Yılmaz", "ayse@anadolugida.example", "0212 555 11 22")
	require.NoError(t, err)
	assert.NotZero(t, s.ID)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anadolu Gıda", got.Name)
	assert.Equal(t, "ayse@anadolugida.example", got.Email)
}

func TestAddSupplierValidation(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Add("", "", "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.Add("Firma", "", "gecersiz-email", "")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	// Email opsiyonel, boş bırakılabilir
	_, err = m.Add("Firma", "", "", "")
	assert.NoError(t, err)
}

func TestListSuppliersOrderedByName(t *testing.T) {
	m := newTestManager(t)

	for _, name := range []string{"Zirve Ambalaj", "Anadolu Gıda", "Marmara Lojistik"} {
		_, err := m.Add(name, "", "", "")
		require.NoError(t, err)
	}

	suppliers, err := m.List()
	require.NoError(t, err)
	require.Len(t, suppliers, 3)
	assert.Equal(t, "Anadolu Gıda", suppliers[0].Name)
	assert.Equal(t, "Marmara Lojistik", suppliers[1].Name)
	assert.Equal(t, "Zirve Ambalaj", suppliers[2].Name)
}

func TestUpdateSupplierPartial(t *testing.T) {
	m := newTestManager(t)

	s, err := m.Add("Firma", "Ali Veli", "ali@firma.example", "0500 000 00 00")
	require.NoError(t, err)

	newPhone := "0500 111 11 11"
	updated, err := m.Update(s.ID, UpdateInput{Phone: &newPhone})
	require.NoError(t, err)

	// Sadece telefon değişmeli
	assert.Equal(t, newPhone, updated.Phone)
	assert.Equal(t, "Firma", updated.Name)
	assert.Equal(t, "Ali Veli", updated.ContactPerson)
	assert.Equal(t, "ali@firma.example", updated.Email)
}

func TestUpdateSupplierNoFields(t *testing.T) {
	m := newTestManager(t)

	s, err := m.Add("Firma", "", "", "")
	require.NoError(t, err)

	updated, err := m.Update(s.ID, UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, s.ID, updated.ID)
	assert.Equal(t, "Firma", updated.Name)
}

func TestUpdateSupplierValidation(t *testing.T) {
	m := newTestManager(t)

	s, err := m.Add("Firma", "", "", "")
	require.NoError(t, err)

	empty := " "
	_, err = m.Update(s.ID, UpdateInput{Name: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := "kotu-email"
	_, err = m.Update(s.ID, UpdateInput{Email: &bad})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = m.Update(9999, UpdateInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSupplier(t *testing.T) {
	m := newTestManager(t)

	s, err := m.Add("Firma", "", "", "")
	require.NoError(t, err)

	require.NoError(t, m.Delete(s.ID))

	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, m.Delete(s.ID), ErrNotFound)
}
