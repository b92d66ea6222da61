package models

import "time"

// AdminLog: Admin işlemlerinin denetim kaydı. Sadece eklenir, asla
// güncellenmez veya silinmez.
type AdminLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	User      string    `gorm:"size:100;not null" json:"user"`
	Action    string    `gorm:"size:100;not null;index" json:"action"`
	Details   string    `gorm:"type:text" json:"details"` // JSON detay (opsiyonel)
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
