package catalog

// PassPackage is a purchasable bundle of prepaid event-entry credits.
// The catalog is fixed at build time; packages are never mutated at runtime.
type PassPackage struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Credits            int    `json:"credits"`
	PriceCents         int64  `json:"price_cents"`
	OriginalPriceCents int64  `json:"original_price_cents"`
}

func Packages() []PassPackage {
	return []PassPackage{
		{
			ID:                 "pack_1",
			Title:              "Single Entry",
			Credits:            1,
			PriceCents:         3900,
			OriginalPriceCents: 3900,
		},
		{
			ID:                 "pack_3",
			Title:              "Pack of 3",
			Credits:            3,
			PriceCents:         9900,
			OriginalPriceCents: 11700,
		},
		{
			ID:                 "pack_10",
			Title:              "Pack of 10",
			Credits:            10,
			PriceCents:         29900,
			OriginalPriceCents: 39000,
		},
	}
}

func ByID(id string) (PassPackage, bool) {
	for _, p := range Packages() {
		if p.ID == id {
			return p, true
		}
	}
	return PassPackage{}, false
}
