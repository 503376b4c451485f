package wizard

import (
	"testing"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name         string
		base         string
		percent      int
		wantFinal    int64
		wantOriginal int64
	}{
		{"no discount", "1000", 0, 1000, 1000},
		{"twenty percent", "1000", 20, 800, 1000},
		{"ten percent of 3000", "3000", 10, 2700, 3000},
		{"rounds half up", "1005", 10, 905, 1005},
		{"fractional base", "999.6", 0, 1000, 1000},
		{"full discount", "1500", 100, 0, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final, original := ApplyDiscount(decimal.RequireFromString(tt.base), tt.percent)
			assert.Equal(t, tt.wantFinal, final)
			assert.Equal(t, tt.wantOriginal, original)
		})
	}
}

func TestBuildPriceParams(t *testing.T) {
	s := NewState()
	s.Level = domain.LevelGeneral
	s.AreaM2 = 60
	s.toggleExtraService(3)
	s.toggleExtraService(1)
	s.setDryCleaningQuantity(7, decimal.NewFromInt(2))

	params := BuildPriceParams(s)
	assert.Equal(t, domain.LevelGeneral, params.Level)
	assert.Equal(t, 60, params.Area)
	assert.Equal(t, []int64{1, 3}, params.ExtraServiceIDs)
	assert.Empty(t, params.DryCleaningQuantities)

	s.ServiceType = domain.ServiceTypeDryCleaning
	params = BuildPriceParams(s)
	assert.Equal(t, domain.LevelBasic, params.Level)
	assert.Zero(t, params.Area)
	assert.Empty(t, params.ExtraServiceIDs)
	require.Len(t, params.DryCleaningQuantities, 1)
	assert.True(t, params.DryCleaningQuantities[7].Equal(decimal.NewFromInt(2)))
}

func TestBuildPricePanel(t *testing.T) {
	loc := MustLoadLocale("ru")

	t.Run("no result shows placeholder", func(t *testing.T) {
		panel := buildPricePanel(loc, true, nil)
		assert.True(t, panel.Loading)
		assert.Equal(t, "—", panel.Display)
		assert.Nil(t, panel.Value)
	})

	t.Run("failure shows placeholder", func(t *testing.T) {
		panel := buildPricePanel(loc, false, &priceResult{failed: true})
		assert.Equal(t, "—", panel.Display)
		assert.Nil(t, panel.Value)
		assert.Empty(t, panel.OldPrice)
	})

	t.Run("date discount", func(t *testing.T) {
		res := resultFromQuote(&domain.PriceQuote{Price: decimal.NewFromInt(1000)}, 20)
		panel := buildPricePanel(loc, false, res)

		require.NotNil(t, panel.Value)
		assert.Equal(t, int64(800), *panel.Value)
		assert.Equal(t, "800 ₽", panel.Display)
		require.NotNil(t, panel.OldValue)
		assert.Equal(t, int64(1000), *panel.OldValue)
		assert.Equal(t, "Скидка 20%", panel.DiscountBadge)
	})

	t.Run("quote old price without date discount", func(t *testing.T) {
		old := decimal.NewFromInt(1200)
		res := resultFromQuote(&domain.PriceQuote{Price: decimal.NewFromInt(1000), OldPrice: &old, PromoText: "Акция"}, 0)
		panel := buildPricePanel(loc, false, res)

		assert.Equal(t, int64(1000), *panel.Value)
		require.NotNil(t, panel.OldValue)
		assert.Equal(t, int64(1200), *panel.OldValue)
		assert.Empty(t, panel.DiscountBadge)
		assert.Equal(t, "Акция", panel.PromoText)
	})

	t.Run("date discount wins over quote old price", func(t *testing.T) {
		old := decimal.NewFromInt(5000)
		res := resultFromQuote(&domain.PriceQuote{Price: decimal.NewFromInt(1000), OldPrice: &old}, 10)
		panel := buildPricePanel(loc, false, res)

		assert.Equal(t, int64(900), *panel.Value)
		assert.Equal(t, int64(1000), *panel.OldValue)
		assert.Equal(t, "Скидка 10%", panel.DiscountBadge)
	})

	t.Run("no discount no old price", func(t *testing.T) {
		res := resultFromQuote(&domain.PriceQuote{Price: decimal.NewFromInt(1000)}, 0)
		panel := buildPricePanel(loc, false, res)

		assert.Nil(t, panel.OldValue)
		assert.Empty(t, panel.OldPrice)
		assert.Empty(t, panel.DiscountBadge)
	})
}

func TestFormatAmount_Grouping(t *testing.T) {
	en := MustLoadLocale("en")
	assert.Equal(t, "12,500 "+en.Currency, en.FormatAmount(12500))
	assert.Equal(t, "800 "+en.Currency, en.FormatAmount(800))
}
