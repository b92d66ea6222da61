package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"envanter-cli/internal/config"
	"envanter-cli/internal/database"

	"go.uber.org/zap"
)

// Info, şifre çözülmeden listelenen yedek meta verisi.
type Info struct {
	Name      string
	Path      string
	Size      int64
	CreatedAt time.Time
}

// Manager veritabanı dosyasının şifreli yedeklerini yönetir. Yedek dosyaları
// sadece sahibi tarafından okunabilir; geri yükleme canlı depoyu ancak tam
// ve doğrulanmış bir çözümden sonra atomik olarak değiştirir.
type Manager struct {
	store         *database.Store
	dir           string
	retentionDays int
	log           *zap.Logger
}

func NewManager(store *database.Store, cfg *config.Config, log *zap.Logger) *Manager {
	return &Manager{
		store:         store,
		dir:           cfg.BackupDir,
		retentionDays: cfg.BackupRetentionDays,
		log:           log,
	}
}

func (m *Manager) ensureDir() error {
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return fmt.Errorf("yedek klasörü oluşturulamadı: %w", err)
	}
	// MkdirAll var olan klasörün iznine dokunmaz, izni her seferinde zorla
	if err := os.Chmod(m.dir, 0o700); err != nil {
		return fmt.Errorf("yedek klasörü izinleri ayarlanamadı: %w", err)
	}
	return nil
}

func backupFilename(t time.Time) string {
	return fmt.Sprintf("backup_%s.db", t.Format("20060102_150405"))
}

// Create canlı deponun tutarlı bir anlık görüntüsünü alır, parola türevli
// anahtarla şifreler ve yedek klasörüne yazar. Herhangi bir adımda hata
// olursa yarım kalmış çıktı silinir.
func (m *Manager) Create(passphrase string) (string, error) {
	if passphrase == "" {
		return "", fmt.Errorf("yedek oluşturulamadı: parola boş olamaz")
	}
	if err := m.ensureDir(); err != nil {
		return "", err
	}

	// VACUUM INTO açık bağlantı üzerinden tutarlı bir kopya üretir.
	// Hedef dosya önceden var olmamalı.
	snapPath := filepath.Join(m.dir, fmt.Sprintf(".snapshot-%d.db", time.Now().UnixNano()))
	defer os.Remove(snapPath)

	if err := m.store.DB.Exec("VACUUM INTO ?", snapPath).Error; err != nil {
		m.log.Error("anlık görüntü alınamadı", zap.Error(err))
		return "", fmt.Errorf("anlık görüntü alınamadı: %w", err)
	}

	plaintext, err := os.ReadFile(snapPath)
	if err != nil {
		return "", fmt.Errorf("anlık görüntü okunamadı: %w", err)
	}

	artifact, err := encrypt(plaintext, passphrase)
	if err != nil {
		return "", fmt.Errorf("yedek şifrelenemedi: %w", err)
	}

	// Önce geçici dosyaya yaz, sonra adlandır: yarım yazılmış yedek
	// hiçbir zaman backup_ öneki ile görünmez.
	backupPath := filepath.Join(m.dir, backupFilename(time.Now()))
	tmpPath := backupPath + ".tmp"
	if err := os.WriteFile(tmpPath, artifact, 0o600); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("yedek yazılamadı: %w", err)
	}
	if err := os.Rename(tmpPath, backupPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("yedek yazılamadı: %w", err)
	}

	m.log.Info("şifreli yedek oluşturuldu",
		zap.String("path", backupPath),
		zap.Int("size", len(artifact)))

	m.cleanupOldBackups()
	return backupPath, nil
}

// Restore şifreli yedeği çözer ve canlı depoyu değiştirir. Parola yanlışsa
// veya dosya üzerinde oynanmışsa canlı depoya dokunulmaz. Değiştirme,
// geçici dosyaya yazıp adlandırma ile yapılır; çökme durumunda yarım
// yüklenmiş depo kalmaz.
func (m *Manager) Restore(path, passphrase string) error {
	artifact, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("yedek dosyası okunamadı: %w", err)
	}

	plaintext, err := decrypt(artifact, passphrase)
	if err != nil {
		m.log.Warn("yedek geri yükleme reddedildi", zap.String("path", path), zap.Error(err))
		return err
	}

	// Aynı dosya sistemi üzerinde atomik rename için geçici dosya canlı
	// deponun yanına yazılır.
	tmpPath := m.store.Path + ".restore"
	if err := os.WriteFile(tmpPath, plaintext, 0o600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("geçici depo yazılamadı: %w", err)
	}

	if err := m.store.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("depo kapatılamadı: %w", err)
	}

	// Eski bağlantıdan kalan WAL/SHM dosyaları yeni depoyla çakışmasın
	os.Remove(m.store.Path + "-wal")
	os.Remove(m.store.Path + "-shm")

	if err := os.Rename(tmpPath, m.store.Path); err != nil {
		os.Remove(tmpPath)
		// Depoyu eski haliyle yeniden açmayı dene
		if reopenErr := m.store.Reopen(); reopenErr != nil {
			m.log.Error("depo yeniden açılamadı", zap.Error(reopenErr))
		}
		return fmt.Errorf("depo değiştirilemedi: %w", err)
	}

	if err := m.store.Reopen(); err != nil {
		return fmt.Errorf("geri yüklenen depo açılamadı: %w", err)
	}

	m.log.Info("yedekten geri yüklendi", zap.String("path", path))
	return nil
}

// List yedek klasöründeki yedekleri en yeniden eskiye sıralı döner. İçerik
// doğrulanmaz, şifre çözülmez.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("yedek klasörü okunamadı: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "backup_") || !strings.HasSuffix(name, ".db") {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Name:      name,
			Path:      filepath.Join(m.dir, name),
			Size:      fi.Size(),
			CreatedAt: fi.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// cleanupOldBackups saklama süresi dolan yedekleri siler. Temizlik hatası
// yedek almayı başarısız saymaz, sadece loglanır.
func (m *Manager) cleanupOldBackups() {
	if m.retentionDays <= 0 {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -m.retentionDays)
	backups, err := m.List()
	if err != nil {
		m.log.Error("eski yedekler listelenemedi", zap.Error(err))
		return
	}

	for _, b := range backups {
		if b.CreatedAt.Before(cutoff) {
			if err := os.Remove(b.Path); err != nil {
				m.log.Error("eski yedek silinemedi", zap.String("name", b.Name), zap.Error(err))
				continue
			}
			m.log.Info("eski yedek silindi", zap.String("name", b.Name))
		}
	}
}
