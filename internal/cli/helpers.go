package cli

import "envanter-cli/internal/supplier"

// supplierUpdateInput boş string'leri "dokunma" anlamına gelen nil alanlara
// çevirir.
func supplierUpdateInput(name, contact, email, phone string) supplier.UpdateInput {
	var in supplier.UpdateInput
	if name != "" {
		in.Name = &name
	}
	if contact != "" {
		in.ContactPerson = &contact
	}
	if email != "" {
		in.Email = &email
	}
	if phone != "" {
		in.Phone = &phone
	}
	return in
}
