package order

import (
	"errors"
	"fmt"

	"envanter-cli/internal/database"
	"envanter-cli/internal/models"
	"envanter-cli/internal/product"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidQuantity   = errors.New("sipariş miktarı pozitif olmalı")
	ErrInvalidPrice      = errors.New("fiyat negatif olamaz")
	ErrInsufficientStock = errors.New("yetersiz stok")
	ErrNotFound          = errors.New("sipariş bulunamadı")
)

// Processor satış ve alım siparişlerini işler. Sipariş kaydı ile stok
// değişikliği tek transaction içinde uygulanır: ikisi birden ya da hiçbiri.
type Processor struct {
	store    *database.Store
	products *product.Manager
	log      *zap.Logger
}

func NewProcessor(store *database.Store, products *product.Manager, log *zap.Logger) *Processor {
	return &Processor{store: store, products: products, log: log}
}

// CreateSalesOrder stok düşerek bir satış siparişi oluşturur. Sipariş tutarı
// ürünün birim fiyatı ile miktarın çarpımıdır. Stok yetersizse hiçbir kayıt
// oluşmaz.
func (p *Processor) CreateSalesOrder(sku string, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	prod, err := p.products.Get(sku)
	if err != nil {
		return nil, err
	}
	if prod.StockQuantity < quantity {
		return nil, fmt.Errorf("%w: '%s' için mevcut: %d, istenen: %d",
			ErrInsufficientStock, sku, prod.StockQuantity, quantity)
	}

	order := models.Order{
		OrderType:  models.OrderTypeSale,
		ProductSKU: sku,
		Quantity:   quantity,
		Price:      prod.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}

	// Sipariş kaydı + stok düşümü atomik olmalı
	tx := p.store.DB.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("işlem başlatılamadı: %w", tx.Error)
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		p.log.Error("satış siparişi oluşturulamadı", zap.String("sku", sku), zap.Error(err))
		return nil, fmt.Errorf("satış siparişi oluşturulamadı: %w", err)
	}

	if _, err := p.products.UpdateStockTx(tx, sku, -quantity); err != nil {
		tx.Rollback()
		// Koşullu UPDATE stok yarışını da yakalar: okuma ile yazma
		// arasında stok düştüyse sipariş tamamen geri alınır.
		if errors.Is(err, product.ErrInvalidStock) {
			return nil, fmt.Errorf("%w: '%s' için istenen: %d", ErrInsufficientStock, sku, quantity)
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("işlem tamamlanamadı: %w", err)
	}

	p.log.Info("satış siparişi oluşturuldu",
		zap.Uint("order_id", order.ID),
		zap.String("sku", sku),
		zap.Int("quantity", quantity))
	return &order, nil
}

// CreatePurchaseOrder stok artırarak bir alım siparişi oluşturur. Fiyat
// alımın toplam tutarıdır; stok yeterlilik kontrolü yoktur.
func (p *Processor) CreatePurchaseOrder(sku string, quantity int, price decimal.Decimal) (*models.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	if _, err := p.products.Get(sku); err != nil {
		return nil, err
	}

	order := models.Order{
		OrderType:  models.OrderTypePurchase,
		ProductSKU: sku,
		Quantity:   quantity,
		Price:      price,
	}

	tx := p.store.DB.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("işlem başlatılamadı: %w", tx.Error)
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		p.log.Error("alım siparişi oluşturulamadı", zap.String("sku", sku), zap.Error(err))
		return nil, fmt.Errorf("alım siparişi oluşturulamadı: %w", err)
	}

	if _, err := p.products.UpdateStockTx(tx, sku, quantity); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("işlem tamamlanamadı: %w", err)
	}

	p.log.Info("alım siparişi oluşturuldu",
		zap.Uint("order_id", order.ID),
		zap.String("sku", sku),
		zap.Int("quantity", quantity))
	return &order, nil
}

func (p *Processor) Get(id uint) (*models.Order, error) {
	var order models.Order
	if err := p.store.DB.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("sipariş sorgulanamadı: %w", err)
	}
	return &order, nil
}

// List siparişleri oluşturulma sırasıyla döner. orderType boşsa tümü,
// doluysa sadece o tip listelenir.
func (p *Processor) List(orderType models.OrderType) ([]models.Order, error) {
	q := p.store.DB.Order("id")
	if orderType != "" {
		q = q.Where("order_type = ?", orderType)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("siparişler listelenemedi: %w", err)
	}
	return orders, nil
}
