package audit

import (
	"encoding/json"
	"fmt"

	"envanter-cli/internal/database"
	"envanter-cli/internal/models"

	"go.uber.org/zap"
)

// Recorder admin işlemlerini admin_logs tablosuna yazar. Kayıt sadece
// eklenir. Yazma hatası bir güvenlik olayıdır: hem loglanır hem çağırana
// döner, asla sessizce yutulmaz.
type Recorder struct {
	store *database.Store
	log   *zap.Logger
}

func NewRecorder(store *database.Store, log *zap.Logger) *Recorder {
	return &Recorder{store: store, log: log}
}

// Record bir admin işlemini kaydeder. details nil olabilir.
func (r *Recorder) Record(user, action string, details map[string]interface{}) error {
	detailsStr := ""
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			r.log.Error("audit detayı serileştirilemedi", zap.String("action", action), zap.Error(err))
			return fmt.Errorf("audit detayı serileştirilemedi: %w", err)
		}
		detailsStr = string(b)
	}

	entry := models.AdminLog{
		User:    user,
		Action:  action,
		Details: detailsStr,
	}

	if err := r.store.DB.Create(&entry).Error; err != nil {
		r.log.Error("audit log kaydedilemedi",
			zap.String("user", user),
			zap.String("action", action),
			zap.Error(err))
		return fmt.Errorf("audit log kaydedilemedi: %w", err)
	}

	r.log.Info("admin işlemi kaydedildi", zap.String("user", user), zap.String("action", action))
	return nil
}

// List en yeni kayıttan başlayarak audit kayıtlarını döner. limit <= 0 ise
// tümü listelenir.
func (r *Recorder) List(limit int) ([]models.AdminLog, error) {
	q := r.store.DB.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var entries []models.AdminLog
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("audit logları listelenemedi: %w", err)
	}
	return entries, nil
}
