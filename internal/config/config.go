package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DBPath     string
	BackupDir  string
	LogFile    string
	SessionKey string // Oturum token'larını imzalamak için HMAC anahtarı

	// Stok eşikleri
	MinStockThreshold      int
	CriticalStockThreshold int

	// Güvenlik ayarları
	BcryptCost        int
	AdminUsername     string
	AdminPasswordHash string
	SessionTTL        time.Duration

	// Yedek ayarları
	BackupRetentionDays int

	// Örnek veri CSV yolları
	SeedProductsCSV  string
	SeedSuppliersCSV string
}

func Load() *Config {
	// .env varsa yükle, yoksa sessizce devam et
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:     getEnv("IMS_DB_PATH", "inventory.db"),
		BackupDir:  getEnv("IMS_BACKUP_DIR", defaultBackupDir()),
		LogFile:    getEnv("IMS_LOG_FILE", "admin_actions.log"),
		SessionKey: getEnv("IMS_SESSION_KEY", ""),

		MinStockThreshold:      getEnvInt("IMS_MIN_STOCK_THRESHOLD", 10),
		CriticalStockThreshold: getEnvInt("IMS_CRITICAL_STOCK_THRESHOLD", 5),

		BcryptCost:        getEnvInt("IMS_HASH_ROUNDS", 12),
		AdminUsername:     getEnv("IMS_ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getEnv("IMS_ADMIN_PASSWORD_HASH", ""),
		SessionTTL:        getEnvDuration("IMS_SESSION_TTL", 30*time.Minute),

		BackupRetentionDays: getEnvInt("IMS_BACKUP_RETENTION_DAYS", 7),

		SeedProductsCSV:  getEnv("IMS_SEED_PRODUCTS_CSV", "sample_data/seed_products.csv"),
		SeedSuppliersCSV: getEnv("IMS_SEED_SUPPLIERS_CSV", "sample_data/seed_suppliers.csv"),
	}

	// Güvenlik kontrolleri
	if cfg.SessionKey == "" {
		log.Fatal("[FATAL] IMS_SESSION_KEY environment değişkeni tanımlanmamış! Oturum token'ları için zorunludur.")
	}
	if len(cfg.SessionKey) < 32 {
		log.Fatal("[FATAL] IMS_SESSION_KEY en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.AdminPasswordHash == "" {
		log.Fatal("[FATAL] IMS_ADMIN_PASSWORD_HASH tanımlanmamış! Admin girişi için bcrypt hash zorunludur.")
	}
	if cfg.BcryptCost < bcrypt.DefaultCost {
		log.Println("[WARN] IMS_HASH_ROUNDS bcrypt varsayılanının altında, üretim için en az 10 kullan.")
	}
	if cfg.CriticalStockThreshold > cfg.MinStockThreshold {
		log.Println("[WARN] Kritik stok eşiği düşük stok eşiğinden büyük, eşikleri kontrol et.")
	}

	return cfg
}

func defaultBackupDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ims/backups"
	}
	return home + "/.ims/backups"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[WARN] %s sayı olarak okunamadı, varsayılan %d kullanılıyor", key, def)
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("[WARN] %s süre olarak okunamadı (örn: 30m), varsayılan %s kullanılıyor", key, def)
	}
	return def
}
