package auth

import (
	"testing"
	"time"

	"envanter-cli/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()

	// Testlerde düşük cost yeterli, amaç doğruluk
	hash, err := HashPassword("adminpass", bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		SessionKey:        "test-session-key-en-az-32-karakter!!",
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
		SessionTTL:        ttl,
	}
	return NewManager(cfg, zap.NewNop())
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("gizli123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, verifyPassword("gizli123", hash))
	assert.False(t, verifyPassword("yanlis", hash))
	assert.False(t, verifyPassword("gizli123", "bozuk-hash"))
}

func TestAuthenticateSuccess(t *testing.T) {
	m := newTestManager(t, 30*time.Minute)

	s, err := m.Authenticate("admin", "adminpass")
	require.NoError(t, err)
	assert.Equal(t, "admin", s.Username)
	assert.True(t, s.IsAdmin)

	assert.NoError(t, m.RequireAdmin())

	current := m.CurrentSession()
	require.NotNil(t, current)
	assert.Equal(t, "admin", current.Username)
}

func TestAuthenticateGenericFailure(t *testing.T) {
	m := newTestManager(t, 30*time.Minute)

	// Yanlış şifre ve bilinmeyen kullanıcı aynı hatayı vermeli
	_, errWrongPass := m.Authenticate("admin", "yanlis")
	_, errUnknownUser := m.Authenticate("baskasi", "adminpass")

	assert.ErrorIs(t, errWrongPass, ErrAuthentication)
	assert.ErrorIs(t, errUnknownUser, ErrAuthentication)
	assert.Equal(t, errWrongPass.Error(), errUnknownUser.Error())

	assert.ErrorIs(t, m.RequireAdmin(), ErrAuthorization)
}

func TestRequireAdminWithoutSession(t *testing.T) {
	m := newTestManager(t, 30*time.Minute)

	assert.ErrorIs(t, m.RequireAdmin(), ErrAuthorization)
	assert.Nil(t, m.CurrentSession())
}

func TestLogoutEndsSession(t *testing.T) {
	m := newTestManager(t, 30*time.Minute)

	_, err := m.Authenticate("admin", "adminpass")
	require.NoError(t, err)
	require.NoError(t, m.RequireAdmin())

	m.Logout()

	assert.ErrorIs(t, m.RequireAdmin(), ErrAuthorization)
	assert.Nil(t, m.CurrentSession())
}

func TestSessionExpiry(t *testing.T) {
	m := newTestManager(t, -1*time.Second)

	_, err := m.Authenticate("admin", "adminpass")
	require.NoError(t, err)

	// Token üretildiği anda süresi dolmuş
	assert.ErrorIs(t, m.RequireAdmin(), ErrAuthorization)
}

func TestFailedLoginDoesNotDropSession(t *testing.T) {
	m := newTestManager(t, 30*time.Minute)

	_, err := m.Authenticate("admin", "adminpass")
	require.NoError(t, err)

	_, err = m.Authenticate("admin", "yanlis")
	assert.ErrorIs(t, err, ErrAuthentication)

	// Aktif oturum başarısız denemeden etkilenmemeli
	assert.NoError(t, m.RequireAdmin())
}
