package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeSale     OrderType = "SALE"
	OrderTypePurchase OrderType = "PURCHASE"
)

// Order: Satış veya alım siparişi. Oluşturulduktan sonra değiştirilmez.
type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderType  OrderType       `gorm:"size:20;not null;index" json:"order_type"` // SALE veya PURCHASE
	ProductSKU string          `gorm:"size:50;not null;index" json:"product_sku"`
	Product    Product         `gorm:"foreignKey:ProductSKU;references:SKU" json:"-"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // Sipariş toplam tutarı
	OrderDate  time.Time       `gorm:"autoCreateTime" json:"order_date"`
}
