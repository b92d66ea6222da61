// Package cli menü tabanlı metin arayüzünü içerir. Arayüz tüm bileşenleri
// birleştirir; iş kuralları manager'larda kalır, burada sadece girdi okuma,
// hata gösterme ve audit kaydı yapılır.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"envanter-cli/internal/audit"
	"envanter-cli/internal/auth"
	"envanter-cli/internal/backup"
	"envanter-cli/internal/config"
	"envanter-cli/internal/order"
	"envanter-cli/internal/product"
	"envanter-cli/internal/seed"
	"envanter-cli/internal/supplier"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CLI struct {
	cfg       *config.Config
	products  *product.Manager
	orders    *order.Processor
	suppliers *supplier.Manager
	auths     *auth.Manager
	audits    *audit.Recorder
	backups   *backup.Manager
	seeds     *seed.Loader
	log       *zap.Logger

	in  *bufio.Reader
	out io.Writer
}

func New(
	cfg *config.Config,
	products *product.Manager,
	orders *order.Processor,
	suppliers *supplier.Manager,
	auths *auth.Manager,
	audits *audit.Recorder,
	backups *backup.Manager,
	seeds *seed.Loader,
	log *zap.Logger,
) *CLI {
	return &CLI{
		cfg:       cfg,
		products:  products,
		orders:    orders,
		suppliers: suppliers,
		auths:     auths,
		audits:    audits,
		backups:   backups,
		seeds:     seeds,
		log:       log,
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
}

// Run ana menü döngüsünü başlatır ve kullanıcı çıkana kadar bloklar.
func (c *CLI) Run() {
	fmt.Fprintln(c.out, "Envanter Yönetim Sistemine hoş geldiniz")

	for {
		fmt.Fprintln(c.out, "\nAna Menü:")
		fmt.Fprintln(c.out, "1. Ürünler")
		fmt.Fprintln(c.out, "2. Siparişler")
		fmt.Fprintln(c.out, "3. Tedarikçiler")
		fmt.Fprintln(c.out, "4. Admin")
		fmt.Fprintln(c.out, "5. Çıkış")

		switch c.prompt("Seçiminiz (1-5)") {
		case "1":
			c.productMenu()
		case "2":
			c.orderMenu()
		case "3":
			c.supplierMenu()
		case "4":
			c.adminMenu()
		case "5":
			fmt.Fprintln(c.out, "Görüşmek üzere!")
			return
		default:
			fmt.Fprintln(c.out, "Geçersiz seçim, tekrar deneyin.")
		}
	}
}

func (c *CLI) prompt(label string) string {
	fmt.Fprintf(c.out, "\n%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *CLI) promptInt(label string) (int, error) {
	v := c.prompt(label)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("sayı bekleniyor: %q", v)
	}
	return n, nil
}

func (c *CLI) promptDecimal(label string) (decimal.Decimal, error) {
	v := c.prompt(label)
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("tutar bekleniyor: %q", v)
	}
	return d, nil
}

// domainErrors: kullanıcıya mesajı olduğu gibi gösterilebilecek hatalar.
// Geri kalan her şey teknik hata sayılır, detay log'a gider.
var domainErrors = []error{
	product.ErrNotFound,
	product.ErrDuplicateSKU,
	product.ErrInvalidInput,
	product.ErrInvalidStock,
	product.ErrHasOrders,
	order.ErrInvalidQuantity,
	order.ErrInvalidPrice,
	order.ErrInsufficientStock,
	order.ErrNotFound,
	supplier.ErrNotFound,
	supplier.ErrInvalidInput,
	supplier.ErrInvalidEmail,
	auth.ErrAuthentication,
	auth.ErrAuthorization,
	backup.ErrDecryptionFailed,
}

func (c *CLI) printError(err error) {
	for _, domain := range domainErrors {
		if errors.Is(err, domain) {
			fmt.Fprintf(c.out, "Hata: %s\n", err)
			return
		}
	}
	c.log.Error("beklenmeyen hata", zap.Error(err))
	fmt.Fprintln(c.out, "Hata: beklenmeyen bir hata oluştu, detaylar log dosyasında.")
}

// recordAudit audit kaydı yazar; başarısızlık operatöre görünür olmalı.
func (c *CLI) recordAudit(action string, details map[string]interface{}) {
	user := "system"
	if s := c.auths.CurrentSession(); s != nil {
		user = s.Username
	}
	if err := c.audits.Record(user, action, details); err != nil {
		fmt.Fprintf(c.out, "UYARI: audit kaydı yazılamadı: %s\n", err)
	}
}
