// Package seed, örnek veri CSV dosyalarını ilk kurulumda veritabanına
// yükler. Var olan kayıtlara dokunulmaz; yükleme tekrar çalıştırılabilir.
package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"envanter-cli/internal/database"
	"envanter-cli/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Loader struct {
	store *database.Store
	log   *zap.Logger
}

func NewLoader(store *database.Store, log *zap.Logger) *Loader {
	return &Loader{store: store, log: log}
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("CSV dosyası açılamadı: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV okunamadı: %w", err)
	}
	if len(records) < 2 {
		return nil, nil // sadece başlık veya boş dosya
	}
	return records[1:], nil // başlık satırını atla
}

// LoadProducts, sku,name,description,price,stock_quantity kolonlu CSV'den
// ürünleri yükler. Zaten kayıtlı SKU'lar atlanır. Eklenen kayıt sayısını
// döner.
func (l *Loader) LoadProducts(path string) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	added := 0
	for i, row := range rows {
		if len(row) < 5 {
			l.log.Warn("eksik kolonlu ürün satırı atlandı", zap.Int("line", i+2))
			continue
		}

		sku := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if sku == "" || name == "" {
			l.log.Warn("SKU veya isim boş, satır atlandı", zap.Int("line", i+2))
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(row[3]))
		if err != nil || price.IsNegative() {
			l.log.Warn("geçersiz fiyat, satır atlandı", zap.String("sku", sku))
			continue
		}
		stock, err := strconv.Atoi(strings.TrimSpace(row[4]))
		if err != nil || stock < 0 {
			l.log.Warn("geçersiz stok miktarı, satır atlandı", zap.String("sku", sku))
			continue
		}

		var count int64
		if err := l.store.DB.Model(&models.Product{}).Where("sku = ?", sku).Count(&count).Error; err != nil {
			return added, fmt.Errorf("ürün sorgulanamadı: %w", err)
		}
		if count > 0 {
			continue
		}

		p := models.Product{
			SKU:           sku,
			Name:          name,
			Description:   strings.TrimSpace(row[2]),
			Price:         price,
			StockQuantity: stock,
		}
		if err := l.store.DB.Create(&p).Error; err != nil {
			return added, fmt.Errorf("ürün eklenemedi (%s): %w", sku, err)
		}
		added++
	}

	l.log.Info("örnek ürünler yüklendi", zap.Int("added", added), zap.String("path", path))
	return added, nil
}

// LoadSuppliers, name,contact_person,email,phone kolonlu CSV'den
// tedarikçileri yükler. Aynı isimli tedarikçi zaten varsa atlanır.
func (l *Loader) LoadSuppliers(path string) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	added := 0
	for i, row := range rows {
		if len(row) < 4 {
			l.log.Warn("eksik kolonlu tedarikçi satırı atlandı", zap.Int("line", i+2))
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			l.log.Warn("tedarikçi ismi boş, satır atlandı", zap.Int("line", i+2))
			continue
		}

		var count int64
		if err := l.store.DB.Model(&models.Supplier{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return added, fmt.Errorf("tedarikçi sorgulanamadı: %w", err)
		}
		if count > 0 {
			continue
		}

		s := models.Supplier{
			Name:          name,
			ContactPerson: strings.TrimSpace(row[1]),
			Email:         strings.TrimSpace(row[2]),
			Phone:         strings.TrimSpace(row[3]),
		}
		if err := l.store.DB.Create(&s).Error; err != nil {
			return added, fmt.Errorf("tedarikçi eklenemedi (%s): %w", name, err)
		}
		added++
	}

	l.log.Info("örnek tedarikçiler yüklendi", zap.Int("added", added), zap.String("path", path))
	return added, nil
}
