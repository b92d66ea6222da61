package cli

import (
	"errors"
	"fmt"

	"envanter-cli/internal/auth"
)

func (c *CLI) adminMenu() {
	// Menüye girerken oturum yoksa giriş iste
	if err := c.auths.RequireAdmin(); err != nil {
		if !c.login() {
			return
		}
	}

	for {
		fmt.Fprintln(c.out, "\nAdmin Menüsü:")
		fmt.Fprintln(c.out, "1. Yedek oluştur")
		fmt.Fprintln(c.out, "2. Yedekten geri yükle")
		fmt.Fprintln(c.out, "3. Yedekleri listele")
		fmt.Fprintln(c.out, "4. Audit loglarını görüntüle")
		fmt.Fprintln(c.out, "5. Örnek verileri yükle")
		fmt.Fprintln(c.out, "6. Çıkış yap ve ana menüye dön")

		choice := c.prompt("Seçiminiz (1-6)")

		// Oturum menü açıkken de dolabilir, her işlemde yeniden denetle
		if choice != "6" {
			if err := c.auths.RequireAdmin(); err != nil {
				fmt.Fprintln(c.out, "Oturum süreniz doldu, tekrar giriş yapın.")
				if !c.login() {
					return
				}
			}
		}

		switch choice {
		case "1":
			c.createBackup()
		case "2":
			c.restoreBackup()
		case "3":
			c.listBackups()
		case "4":
			c.showAuditLogs()
		case "5":
			c.loadSeedData()
		case "6":
			c.auths.Logout()
			fmt.Fprintln(c.out, "Oturum kapatıldı.")
			return
		default:
			fmt.Fprintln(c.out, "Geçersiz seçim, tekrar deneyin.")
		}
	}
}

func (c *CLI) login() bool {
	for attempt := 0; attempt < 3; attempt++ {
		username := c.prompt("Kullanıcı adı")
		password := c.prompt("Şifre")

		_, err := c.auths.Authenticate(username, password)
		if err == nil {
			fmt.Fprintln(c.out, "Giriş başarılı.")
			c.recordAudit("login", nil)
			return true
		}
		if errors.Is(err, auth.ErrAuthentication) {
			fmt.Fprintf(c.out, "Hata: %s\n", err)
			continue
		}
		c.printError(err)
		return false
	}
	fmt.Fprintln(c.out, "Çok fazla başarısız deneme.")
	return false
}

func (c *CLI) createBackup() {
	passphrase := c.prompt("Yedek parolası")

	path, err := c.backups.Create(passphrase)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Şifreli yedek oluşturuldu: %s\n", path)
	c.recordAudit("backup_created", map[string]interface{}{"path": path})
}

func (c *CLI) restoreBackup() {
	path := c.prompt("Yedek dosyası yolu")
	passphrase := c.prompt("Yedek parolası")

	fmt.Fprintln(c.out, "DİKKAT: Geri yükleme mevcut verilerin üzerine yazar.")
	if c.prompt("Devam edilsin mi? (evet/hayır)") != "evet" {
		fmt.Fprintln(c.out, "Geri yükleme iptal edildi.")
		return
	}

	if err := c.backups.Restore(path, passphrase); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Geri yükleme tamamlandı.")
	c.recordAudit("backup_restored", map[string]interface{}{"path": path})
}

func (c *CLI) listBackups() {
	backups, err := c.backups.List()
	if err != nil {
		c.printError(err)
		return
	}
	if len(backups) == 0 {
		fmt.Fprintln(c.out, "Kayıtlı yedek yok.")
		return
	}

	fmt.Fprintf(c.out, "%-30s %10s %-20s\n", "Dosya", "Boyut", "Tarih")
	for _, b := range backups {
		fmt.Fprintf(c.out, "%-30s %10d %-20s\n",
			b.Name, b.Size, b.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}

func (c *CLI) showAuditLogs() {
	entries, err := c.audits.List(50)
	if err != nil {
		c.printError(err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "Audit kaydı yok.")
		return
	}

	fmt.Fprintf(c.out, "%-6s %-15s %-20s %-20s %s\n", "ID", "Kullanıcı", "İşlem", "Tarih", "Detay")
	for _, e := range entries {
		fmt.Fprintf(c.out, "%-6d %-15s %-20s %-20s %s\n",
			e.ID, e.User, e.Action, e.CreatedAt.Format("2006-01-02 15:04:05"), e.Details)
	}
}

func (c *CLI) loadSeedData() {
	productCount, err := c.seeds.LoadProducts(c.cfg.SeedProductsCSV)
	if err != nil {
		c.printError(err)
		return
	}
	supplierCount, err := c.seeds.LoadSuppliers(c.cfg.SeedSuppliersCSV)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintf(c.out, "Örnek veriler yüklendi: %d ürün, %d tedarikçi\n", productCount, supplierCount)
	c.recordAudit("seed_loaded", map[string]interface{}{
		"products":  productCount,
		"suppliers": supplierCount,
	})
}
