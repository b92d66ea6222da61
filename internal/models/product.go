package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	SKU           string          `gorm:"primaryKey;size:50" json:"sku"`
	Name          string          `gorm:"size:100;not null" json:"name"`
	Description   string          `gorm:"size:500" json:"description"` // Opsiyonel açıklama
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"` // Hiçbir zaman negatif olamaz
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
