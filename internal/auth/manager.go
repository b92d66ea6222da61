package auth

import (
	"errors"
	"strings"

	"envanter-cli/internal/config"

	"go.uber.org/zap"
)

var (
	// ErrAuthentication bilinçli olarak geneldir; kullanıcı adı mı yoksa
	// şifre mi hatalı belli edilmez.
	ErrAuthentication = errors.New("kullanıcı adı veya şifre hatalı")
	ErrAuthorization  = errors.New("bu işlem için admin yetkisi gerekli")
)

// Zamanlama farkından kullanıcı adı sızdırmamak için bilinmeyen kullanıcıda
// da bcrypt karşılaştırması çalıştırılır ("dummy" hash'i ile).
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// Session süreç içi oturumu temsil eder; hiçbir zaman kalıcı hale
// getirilmez.
type Session struct {
	Username string
	IsAdmin  bool
}

// Manager admin girişini doğrular ve süreç içi oturumu tutar. Oturum,
// geçerlilik süresi gömülü imzalı bir token olarak bellekte saklanır ve her
// yetki kontrolünde yeniden doğrulanır.
type Manager struct {
	cfg   *config.Config
	log   *zap.Logger
	token string // aktif oturum token'ı, boşsa oturum yok
}

func NewManager(cfg *config.Config, log *zap.Logger) *Manager {
	return &Manager{cfg: cfg, log: log}
}

// Authenticate kullanıcıyı doğrular ve yeni bir oturum başlatır.
func (m *Manager) Authenticate(username, password string) (*Session, error) {
	username = strings.TrimSpace(username)

	hash := dummyHash
	known := username == m.cfg.AdminUsername
	if known {
		hash = m.cfg.AdminPasswordHash
	}

	if !verifyPassword(password, hash) || !known {
		m.log.Warn("başarısız giriş denemesi", zap.String("username", username))
		return nil, ErrAuthentication
	}

	token, err := generateToken(m.cfg.SessionKey, username, true, m.cfg.SessionTTL)
	if err != nil {
		m.log.Error("oturum token'ı oluşturulamadı", zap.Error(err))
		return nil, ErrAuthentication
	}

	m.token = token
	m.log.Info("kullanıcı giriş yaptı", zap.String("username", username))
	return &Session{Username: username, IsAdmin: true}, nil
}

// RequireAdmin aktif ve süresi dolmamış bir admin oturumu ister.
func (m *Manager) RequireAdmin() error {
	claims, err := m.currentClaims()
	if err != nil || !claims.IsAdmin {
		return ErrAuthorization
	}
	return nil
}

// CurrentSession aktif oturumu döner; oturum yoksa veya süresi dolduysa nil.
func (m *Manager) CurrentSession() *Session {
	claims, err := m.currentClaims()
	if err != nil {
		return nil
	}
	return &Session{Username: claims.Username, IsAdmin: claims.IsAdmin}
}

// Logout aktif oturumu sonlandırır.
func (m *Manager) Logout() {
	if s := m.CurrentSession(); s != nil {
		m.log.Info("kullanıcı çıkış yaptı", zap.String("username", s.Username))
	}
	m.token = ""
}

func (m *Manager) currentClaims() (*SessionClaims, error) {
	if m.token == "" {
		return nil, ErrAuthorization
	}
	claims, err := parseToken(m.cfg.SessionKey, m.token)
	if err != nil {
		// Süresi dolmuş token'ı bellekte tutmanın anlamı yok
		m.token = ""
		return nil, ErrAuthorization
	}
	return claims, nil
}
