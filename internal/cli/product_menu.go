package cli

import (
	"fmt"

	"envanter-cli/internal/models"
)

func (c *CLI) productMenu() {
	for {
		fmt.Fprintln(c.out, "\nÜrün Yönetimi:")
		fmt.Fprintln(c.out, "1. Yeni ürün ekle")
		fmt.Fprintln(c.out, "2. Tüm ürünleri listele")
		fmt.Fprintln(c.out, "3. Stok güncelle")
		fmt.Fprintln(c.out, "4. Düşük stoklu ürünler")
		fmt.Fprintln(c.out, "5. Kritik stoklu ürünler")
		fmt.Fprintln(c.out, "6. Ürün sil")
		fmt.Fprintln(c.out, "7. Ana menüye dön")

		switch c.prompt("Seçiminiz (1-7)") {
		case "1":
			c.addProduct()
		case "2":
			c.listProducts()
		case "3":
			c.updateStock()
		case "4":
			c.showLowStock(false)
		case "5":
			c.showLowStock(true)
		case "6":
			c.deleteProduct()
		case "7":
			return
		default:
			fmt.Fprintln(c.out, "Geçersiz seçim, tekrar deneyin.")
		}
	}
}

func (c *CLI) addProduct() {
	sku := c.prompt("SKU")
	name := c.prompt("Ürün adı")
	description := c.prompt("Açıklama (opsiyonel)")
	price, err := c.promptDecimal("Birim fiyat")
	if err != nil {
		fmt.Fprintf(c.out, "Hata: %s\n", err)
		return
	}
	stock, err := c.promptInt("Başlangıç stoku")
	if err != nil {
		fmt.Fprintf(c.out, "Hata: %s\n", err)
		return
	}

	p, err := c.products.Add(sku, name, description, price, stock)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Ürün eklendi: %s (%s), stok: %d\n", p.Name, p.SKU, p.StockQuantity)
}

func (c *CLI) listProducts() {
	products, err := c.products.List()
	if err != nil {
		c.printError(err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(c.out, "Kayıtlı ürün yok.")
		return
	}
	c.printProducts(products)
}

func (c *CLI) printProducts(products []models.Product) {
	fmt.Fprintf(c.out, "%-15s %-30s %12s %8s\n", "SKU", "Ad", "Fiyat", "Stok")
	for _, p := range products {
		fmt.Fprintf(c.out, "%-15s %-30s %12s %8d\n", p.SKU, p.Name, p.Price.StringFixed(2), p.StockQuantity)
	}
}

func (c *CLI) updateStock() {
	sku := c.prompt("SKU")
	delta, err := c.promptInt("Miktar değişimi (+/-)")
	if err != nil {
		fmt.Fprintf(c.out, "Hata: %s\n", err)
		return
	}

	p, err := c.products.UpdateStock(sku, delta)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Stok güncellendi: %s, yeni stok: %d\n", p.SKU, p.StockQuantity)
}

func (c *CLI) deleteProduct() {
	sku := c.prompt("Silinecek ürünün SKU'su")
	if c.prompt("Emin misiniz? (evet/hayır)") != "evet" {
		fmt.Fprintln(c.out, "Silme iptal edildi.")
		return
	}

	if err := c.products.Delete(sku); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Ürün silindi: %s\n", sku)
}

func (c *CLI) showLowStock(critical bool) {
	var (
		products []models.Product
		err      error
	)
	if critical {
		products, err = c.products.CriticalStock()
	} else {
		products, err = c.products.LowStock()
	}
	if err != nil {
		c.printError(err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(c.out, "Eşiğin altında ürün yok.")
		return
	}
	c.printProducts(products)
}
