package platforms

import "github.com/petmate-id/petcare-services/api/internal/external/domain"

// NewShopeePlatform returns the synthetic Shopee source. Fewer pet-service
// listings than Tokopedia, middling verification rate.
func NewShopeePlatform() *StubPlatform {
	return NewStubPlatform(StubConfig{
		Source:      domain.SourceShopee,
		IDPrefix:    "shp-",
		RecordCount: 3,
		NameTemplates: []string{
			"Shopee Pet Official",
			"Hewan Lucu Store",
			"Petshop Hemat",
		},
		AddressTemplate: "Jl. Gatot Subroto No. %d, %s",
		PhoneTemplate:   "+62 815-2200-%04d",
		URLTemplate:     "https://shopee.co.id/shop/%s",
		VerifiedChance:  0.6,
		RatingMin:       3.8,
		RatingMax:       4.9,
		ReviewCountMax:  1200,
		PriceRangeMin:   1,
		PriceRangeMax:   2,
	})
}
