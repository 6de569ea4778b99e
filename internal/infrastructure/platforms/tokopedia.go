package platforms

import "github.com/petmate-id/petcare-services/api/internal/external/domain"

// NewTokopediaPlatform returns the synthetic Tokopedia source. Marketplace
// shops are verified by the platform itself and carry large review counts.
func NewTokopediaPlatform() *StubPlatform {
	return NewStubPlatform(StubConfig{
		Source:      domain.SourceTokopedia,
		IDPrefix:    "tkp-",
		RecordCount: 5,
		NameTemplates: []string{
			"Toko Hewan Makmur",
			"Petshop Online Jaya",
			"Satwa Mart",
			"Kandang Emas",
			"Pet Supplies ID",
		},
		AddressTemplate: "Ruko Blok A No. %d, %s",
		PhoneTemplate:   "+62 813-1100-%04d",
		URLTemplate:     "https://www.tokopedia.com/shop/%s",
		VerifiedChance:  0.8,
		RatingMin:       4.2,
		RatingMax:       5.0,
		ReviewCountMax:  2000,
		PriceRangeMin:   1,
		PriceRangeMax:   2,
	})
}
