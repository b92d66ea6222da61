// Package database yerel SQLite deposunu yönetir.
//
// Depo tek süreç, tek bağlantı varsayımıyla çalışır. Aynı dosyayı birden
// fazla sürecin açması durumunda stok güncellemeleri yarışabilir; bu durum
// kapsam dışıdır ve bilinen bir kısıt olarak kabul edilir.
package database

import (
	"fmt"

	"envanter-cli/internal/config"
	"envanter-cli/internal/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store, gorm bağlantısını ve depo dosyasının yolunu birlikte taşır.
// Yedekten geri yükleme sırasında bağlantı kapatılıp dosya değiştirildikten
// sonra Reopen ile yeniden açılır.
type Store struct {
	DB   *gorm.DB
	Path string

	log *zap.Logger
}

func Open(cfg *config.Config, log *zap.Logger) (*Store, error) {
	s := &Store{Path: cfg.DBPath, log: log}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) open() error {
	// foreign_keys pragma'sı her bağlantıda açık olmalı, DSN üzerinden veriyoruz
	dsn := s.Path + "?_pragma=foreign_keys(1)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	err = db.AutoMigrate(
		&models.Product{},
		&models.Supplier{},
		&models.Order{},
		&models.AdminLog{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate hatası: %w", err)
	}

	s.DB = db
	if s.log != nil {
		s.log.Info("veritabanı bağlantısı hazır", zap.String("path", s.Path))
	}
	return nil
}

// Close bağlantıyı kapatır. Geri yükleme öncesi dosyanın serbest kalması
// için çağrılır.
func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return fmt.Errorf("bağlantı alınamadı: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("bağlantı kapatılamadı: %w", err)
	}
	s.DB = nil
	return nil
}

// Reopen kapatılmış depoyu aynı dosya yolundan yeniden açar.
func (s *Store) Reopen() error {
	if s.DB != nil {
		if err := s.Close(); err != nil {
			return err
		}
	}
	return s.open()
}
