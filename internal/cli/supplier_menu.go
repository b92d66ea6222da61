package cli

import "fmt"

func (c *CLI) supplierMenu() {
	for {
		fmt.Fprintln(c.out, "\nTedarikçi Yönetimi:")
		fmt.Fprintln(c.out, "1. Yeni tedarikçi ekle")
		fmt.Fprintln(c.out, "2. Tedarikçileri listele")
		fmt.Fprintln(c.out, "3. Tedarikçi güncelle")
		fmt.Fprintln(c.out, "4. Tedarikçi sil")
		fmt.Fprintln(c.out, "5. Ana menüye dön")

		switch c.prompt("Seçiminiz (1-5)") {
		case "1":
			c.addSupplier()
		case "2":
			c.listSuppliers()
		case "3":
			c.updateSupplier()
		case "4":
			c.deleteSupplier()
		case "5":
			return
		default:
			fmt.Fprintln(c.out, "Geçersiz seçim, tekrar deneyin.")
		}
	}
}

func (c *CLI) addSupplier() {
	name := c.prompt("Firma adı")
	contact := c.prompt("İlgili kişi (opsiyonel)")
	email := c.prompt("Email (opsiyonel)")
	phone := c.prompt("Telefon (opsiyonel)")

	s, err := c.suppliers.Add(name, contact, email, phone)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Tedarikçi eklendi: #%d %s\n", s.ID, s.Name)
}

func (c *CLI) listSuppliers() {
	suppliers, err := c.suppliers.List()
	if err != nil {
		c.printError(err)
		return
	}
	if len(suppliers) == 0 {
		fmt.Fprintln(c.out, "Kayıtlı tedarikçi yok.")
		return
	}

	fmt.Fprintf(c.out, "%-6s %-30s %-20s %-25s %-15s\n", "ID", "Ad", "İlgili Kişi", "Email", "Telefon")
	for _, s := range suppliers {
		fmt.Fprintf(c.out, "%-6d %-30s %-20s %-25s %-15s\n",
			s.ID, s.Name, s.ContactPerson, s.Email, s.Phone)
	}
}

func (c *CLI) updateSupplier() {
	id, err := c.promptInt("Tedarikçi ID")
	if err != nil {
		fmt.Fprintf(c.out, "Hata: %s\n", err)
		return
	}

	fmt.Fprintln(c.out, "Boş bırakılan alanlar değiştirilmez.")
	in := supplierUpdateInput(
		c.prompt("Yeni firma adı"),
		c.prompt("Yeni ilgili kişi"),
		c.prompt("Yeni email"),
		c.prompt("Yeni telefon"),
	)

	s, err := c.suppliers.Update(uint(id), in)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Tedarikçi güncellendi: #%d %s\n", s.ID, s.Name)
}

func (c *CLI) deleteSupplier() {
	id, err := c.promptInt("Silinecek tedarikçi ID")
	if err != nil {
		fmt.Fprintf(c.out, "Hata: %s\n", err)
		return
	}
	if c.prompt("Emin misiniz? (evet/hayır)") != "evet" {
		fmt.Fprintln(c.out, "Silme iptal edildi.")
		return
	}

	if err := c.suppliers.Delete(uint(id)); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Tedarikçi silindi: #%d\n", id)
}
