package platforms

import "github.com/petmate-id/petcare-services/api/internal/external/domain"

// NewInstagramPlatform returns the synthetic Instagram source. Instagram
// sellers are mostly home businesses: many listings, rarely verified,
// enthusiastic ratings.
func NewInstagramPlatform() *StubPlatform {
	return NewStubPlatform(StubConfig{
		Source:      domain.SourceInstagram,
		IDPrefix:    "ig-",
		RecordCount: 5,
		NameTemplates: []string{
			"Paw Studio",
			"Petshop Kita",
			"Rumah Grooming",
			"Anabul Care",
			"Meow & Woof",
		},
		AddressTemplate: "Jl. Kemang Raya No. %d, %s",
		PhoneTemplate:   "+62 812-9000-%04d",
		URLTemplate:     "https://www.instagram.com/p/%s",
		VerifiedChance:  0.2,
		RatingMin:       4.0,
		RatingMax:       5.0,
		ReviewCountMax:  250,
		PriceRangeMin:   1,
		PriceRangeMax:   3,
	})
}
