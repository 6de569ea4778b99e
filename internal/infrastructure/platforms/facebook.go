package platforms

import "github.com/petmate-id/petcare-services/api/internal/external/domain"

// NewFacebookPlatform returns the synthetic Facebook source. Facebook pages
// skew toward established businesses with broader rating spread.
func NewFacebookPlatform() *StubPlatform {
	return NewStubPlatform(StubConfig{
		Source:      domain.SourceFacebook,
		IDPrefix:    "fb-",
		RecordCount: 4,
		NameTemplates: []string{
			"Klinik Hewan Sahabat",
			"Pet Care Center",
			"Griya Satwa",
			"Happy Tails",
		},
		AddressTemplate: "Jl. Sudirman No. %d, %s",
		PhoneTemplate:   "+62 21-555-%04d",
		URLTemplate:     "https://www.facebook.com/pages/%s",
		VerifiedChance:  0.5,
		RatingMin:       3.5,
		RatingMax:       5.0,
		ReviewCountMax:  400,
		PriceRangeMin:   2,
		PriceRangeMax:   4,
	})
}
