package product

import (
	"errors"
	"fmt"
	"strings"

	"envanter-cli/internal/config"
	"envanter-cli/internal/database"
	"envanter-cli/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("ürün bulunamadı")
	ErrDuplicateSKU = errors.New("bu SKU ile kayıtlı bir ürün zaten var")
	ErrInvalidInput = errors.New("geçersiz ürün bilgisi")
	ErrInvalidStock = errors.New("stok güncellemesi negatif miktara yol açar")
	ErrHasOrders    = errors.New("ürüne bağlı siparişler var, silinemez")
)

// Manager ürün kayıtlarını ve stok miktarlarını yönetir. Stok miktarı
// tamamlanan her işlemden sonra sıfırın altına düşemez.
type Manager struct {
	store *database.Store
	cfg   *config.Config
	log   *zap.Logger
}

func NewManager(store *database.Store, cfg *config.Config, log *zap.Logger) *Manager {
	return &Manager{store: store, cfg: cfg, log: log}
}

func (m *Manager) Add(sku, name, description string, price decimal.Decimal, initialStock int) (*models.Product, error) {
	sku = strings.TrimSpace(sku)
	name = strings.TrimSpace(name)

	if sku == "" || name == "" {
		return nil, fmt.Errorf("%w: SKU ve isim zorunlu", ErrInvalidInput)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: fiyat negatif olamaz", ErrInvalidInput)
	}
	if initialStock < 0 {
		return nil, fmt.Errorf("%w: başlangıç stoku negatif olamaz", ErrInvalidInput)
	}

	// SKU benzersizliği kontrolü
	var count int64
	if err := m.store.DB.Model(&models.Product{}).Where("sku = ?", sku).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("ürün sorgulanamadı: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, sku)
	}

	p := models.Product{
		SKU:           sku,
		Name:          name,
		Description:   description,
		Price:         price,
		StockQuantity: initialStock,
	}
	if err := m.store.DB.Create(&p).Error; err != nil {
		m.log.Error("ürün oluşturulamadı", zap.String("sku", sku), zap.Error(err))
		return nil, fmt.Errorf("ürün oluşturulamadı: %w", err)
	}

	m.log.Info("ürün eklendi", zap.String("sku", sku), zap.Int("stock", initialStock))
	return &p, nil
}

func (m *Manager) Get(sku string) (*models.Product, error) {
	var p models.Product
	if err := m.store.DB.First(&p, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, sku)
		}
		return nil, fmt.Errorf("ürün sorgulanamadı: %w", err)
	}
	return &p, nil
}

func (m *Manager) List() ([]models.Product, error) {
	var products []models.Product
	if err := m.store.DB.Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("ürünler listelenemedi: %w", err)
	}
	return products, nil
}

// UpdateStock işaretli bir delta uygular. Sonuç negatif olacaksa hiçbir
// değişiklik yapılmaz. Koşul doğrudan UPDATE içinde olduğundan ara durum
// hiçbir zaman görünmez.
func (m *Manager) UpdateStock(sku string, delta int) (*models.Product, error) {
	return m.updateStockTx(m.store.DB, sku, delta)
}

// UpdateStockTx, sipariş işleme gibi çok adımlı işlemlerin kendi
// transaction'ı içinden stok güncellemesi yapabilmesi için dışarıya açılır.
func (m *Manager) UpdateStockTx(tx *gorm.DB, sku string, delta int) (*models.Product, error) {
	return m.updateStockTx(tx, sku, delta)
}

func (m *Manager) updateStockTx(tx *gorm.DB, sku string, delta int) (*models.Product, error) {
	res := tx.Model(&models.Product{}).
		Where("sku = ? AND stock_quantity + ? >= 0", sku, delta).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
	if res.Error != nil {
		m.log.Error("stok güncellenemedi", zap.String("sku", sku), zap.Error(res.Error))
		return nil, fmt.Errorf("stok güncellenemedi: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		// Ürün mü yok, yoksa stok mu yetersiz? Ayrıştır.
		var count int64
		if err := tx.Model(&models.Product{}).Where("sku = ?", sku).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("ürün sorgulanamadı: %w", err)
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, sku)
		}
		return nil, fmt.Errorf("%w: %s (delta %d)", ErrInvalidStock, sku, delta)
	}

	var p models.Product
	if err := tx.First(&p, "sku = ?", sku).Error; err != nil {
		return nil, fmt.Errorf("ürün sorgulanamadı: %w", err)
	}
	return &p, nil
}

// LowStock düşük stok eşiğinin altındaki (eşik dahil) ürünleri döner.
// Sıralama deterministik: önce stok miktarı, eşitlikte SKU.
func (m *Manager) LowStock() ([]models.Product, error) {
	return m.belowThreshold(m.cfg.MinStockThreshold)
}

// CriticalStock kritik stok eşiğinin altındaki ürünleri döner.
func (m *Manager) CriticalStock() ([]models.Product, error) {
	return m.belowThreshold(m.cfg.CriticalStockThreshold)
}

func (m *Manager) belowThreshold(threshold int) ([]models.Product, error) {
	var products []models.Product
	err := m.store.DB.
		Where("stock_quantity <= ?", threshold).
		Order("stock_quantity, sku").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("ürünler listelenemedi: %w", err)
	}
	return products, nil
}

// Delete ürünü kaldırır. Sipariş geçmişi olan ürünler denetim bütünlüğü
// bozulmasın diye silinemez.
func (m *Manager) Delete(sku string) error {
	if _, err := m.Get(sku); err != nil {
		return err
	}

	var orderCount int64
	if err := m.store.DB.Model(&models.Order{}).Where("product_sku = ?", sku).Count(&orderCount).Error; err != nil {
		return fmt.Errorf("siparişler sorgulanamadı: %w", err)
	}
	if orderCount > 0 {
		return fmt.Errorf("%w: %s (%d sipariş)", ErrHasOrders, sku, orderCount)
	}

	if err := m.store.DB.Delete(&models.Product{}, "sku = ?", sku).Error; err != nil {
		m.log.Error("ürün silinemedi", zap.String("sku", sku), zap.Error(err))
		return fmt.Errorf("ürün silinemedi: %w", err)
	}

	m.log.Info("ürün silindi", zap.String("sku", sku))
	return nil
}
