package cli

import (
	"fmt"
	"strings"

	"envanter-cli/internal/models"
)

func (c *CLI) orderMenu() {
	for {
		fmt.Fprintln(c.out, "\nSipariş Yönetimi:")
		fmt.Fprintln(c.out, "1. Satış siparişi oluştur")
		fmt.Fprintln(c.out, "2. Alım siparişi oluştur")
		fmt.Fprintln(c.out, "3. Siparişleri listele")
		fmt.Fprintln(c.out, "4. Ana menüye dön")

		switch c.prompt("Seçiminiz (1-4)") {
		case "1":
			c.createSalesOrder()
		case "2":
			c.createPurchaseOrder()
		case "3":
			c.listOrders()
		case "4":
			return
		default:
			fmt.Fprintln(c.out, "Geçersiz seçim, tekrar deneyin.")
		}
	}
}

func (c *CLI) createSalesOrder() {
	sku := c.prompt("SKU")
	quantity, err := c.promptInt("Miktar")
	if err != nil {
		fmt.Fprintf(c.out, "Hata: %s\n", err)
		return
	}

	o, err := c.orders.CreateSalesOrder(sku, quantity)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Satış siparişi oluşturuldu: #%d, %d x %s, tutar: %s\n",
		o.ID, o.Quantity, o.ProductSKU, o.Price.StringFixed(2))
}

func (c *CLI) createPurchaseOrder() {
	sku := c.prompt("SKU")
	quantity, err := c.promptInt("Miktar")
	if err != nil {
		fmt.Fprintf(c.out, "Hata: %s\n", err)
		return
	}
	price, err := c.promptDecimal("Toplam alım tutarı")
	if err != nil {
		fmt.Fprintf(c.out, "Hata: %s\n", err)
		return
	}

	o, err := c.orders.CreatePurchaseOrder(sku, quantity, price)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Alım siparişi oluşturuldu: #%d, %d x %s, tutar: %s\n",
		o.ID, o.Quantity, o.ProductSKU, o.Price.StringFixed(2))
}

func (c *CLI) listOrders() {
	filter := strings.ToUpper(c.prompt("Tip filtresi (SALE/PURCHASE, boş = tümü)"))

	var orderType models.OrderType
	switch filter {
	case "":
		orderType = ""
	case string(models.OrderTypeSale):
		orderType = models.OrderTypeSale
	case string(models.OrderTypePurchase):
		orderType = models.OrderTypePurchase
	default:
		fmt.Fprintln(c.out, "Geçersiz tip, SALE veya PURCHASE girin.")
		return
	}

	orders, err := c.orders.List(orderType)
	if err != nil {
		c.printError(err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(c.out, "Kayıtlı sipariş yok.")
		return
	}

	fmt.Fprintf(c.out, "%-6s %-10s %-15s %8s %12s %-20s\n", "ID", "Tip", "SKU", "Miktar", "Tutar", "Tarih")
	for _, o := range orders {
		fmt.Fprintf(c.out, "%-6d %-10s %-15s %8d %12s %-20s\n",
			o.ID, o.OrderType, o.ProductSKU, o.Quantity,
			o.Price.StringFixed(2), o.OrderDate.Format("2006-01-02 15:04:05"))
	}
}
