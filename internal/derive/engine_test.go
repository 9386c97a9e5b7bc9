package derive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"startify/internal/domain"
)

func TestDeriveIsPure(t *testing.T) {
	idea := domain.StartupIdea{
		Description:  "health clinic scheduling",
		Industry:     "HealthTech",
		TargetMarket: "B2B Enterprise",
	}
	first := Derive(idea)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Derive(idea))
	}
}

func TestDeriveHealthClinicScenario(t *testing.T) {
	idea := domain.StartupIdea{
		Description: "health clinic scheduling",
		Industry:    "HealthTech",
	}
	m := Derive(idea)
	require.Equal(t, int64(374_000_000_000), m.MarketSizeUSD)
	require.Equal(t, "MediFlow", m.BrandName)
}

func TestDeriveFundingTiers(t *testing.T) {
	enterprise := Derive(domain.StartupIdea{TargetMarket: "B2B Enterprise"})
	require.Equal(t, int64(5_000_000), enterprise.FundingAmountUSD)
	require.Equal(t, int64(299), enterprise.StartingPriceUSD)
	require.Equal(t, int64(999), enterprise.ProfessionalPriceUSD)

	mass := Derive(domain.StartupIdea{TargetMarket: "B2C Mass Market"})
	require.Equal(t, int64(2_500_000), mass.FundingAmountUSD)
	require.Equal(t, int64(49), mass.StartingPriceUSD)
	require.Equal(t, int64(199), mass.ProfessionalPriceUSD)
}

func TestBrandNameKeywordOrder(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"a medical records platform", "MediFlow"},
		{"online learning for kids", "EduSpark"},
		{"payment rails for merchants", "FinTech"},
		{"apps for rural communities", "AgriTech"},
		{"restaurant table booking", "FoodFlow"},
		{"generic b2b dashboard", "InnovateTech"},
		{"", "InnovateTech"},
		// health precedes farm in rule order, so it wins even when both match
		{"health tracking for farm workers", "MediFlow"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, BrandName(tt.description), "description %q", tt.description)
	}
}

func TestMarketSizeIsTotal(t *testing.T) {
	for _, industry := range domain.Industries {
		require.Greater(t, MarketSize(industry), int64(0), "industry %q", industry)
	}
	require.Equal(t, int64(25_000_000_000), MarketSize("Underwater Basket Weaving"))
	require.Equal(t, int64(25_000_000_000), MarketSize(""))
}

func TestMarketSizeTable(t *testing.T) {
	want := map[string]int64{
		"HealthTech": 374_000_000_000,
		"EdTech":     89_000_000_000,
		"FinTech":    179_000_000_000,
		"AgriTech":   47_000_000_000,
		"RetailTech": 56_000_000_000,
		"FoodTech":   43_000_000_000,
		"PropTech":   31_000_000_000,
		"LegalTech":  27_000_000_000,
	}
	for industry, size := range want {
		require.Equal(t, size, MarketSize(industry), "industry %q", industry)
	}
}

func TestSAMAndSOMFractions(t *testing.T) {
	m := Derive(domain.StartupIdea{Industry: "HealthTech"})
	require.Equal(t, int64(149_600_000_000), m.SAMUSD())
	require.Equal(t, int64(37_400_000_000), m.SOMUSD())
}
