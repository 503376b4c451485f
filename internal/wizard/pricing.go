package wizard

import (
	"fmt"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BuildPriceParams собирает параметры запроса цены из состояния.
// Комнаты и санузлы всегда нулевые: мастер их не собирает.
func BuildPriceParams(s *State) domain.PriceParams {
	if s.ServiceType == domain.ServiceTypeDryCleaning {
		return domain.PriceParams{
			Level:                 domain.LevelBasic,
			DryCleaningQuantities: lo.Assign(s.DryCleaningQuantities),
		}
	}
	return domain.PriceParams{
		Level:           s.Level,
		Area:            s.AreaM2,
		ExtraServiceIDs: append([]int64(nil), s.SelectedExtraServiceIDs...),
	}
}

// ApplyDiscount возвращает базовую и итоговую цену, округленные до целого
func ApplyDiscount(base decimal.Decimal, percent int) (final int64, original int64) {
	original = base.Round(0).IntPart()
	if percent <= 0 {
		return original, original
	}
	factor := hundred.Sub(decimal.NewFromInt(int64(percent))).Div(hundred)
	return base.Mul(factor).Round(0).IntPart(), original
}

// PricePanel представляет блок цены
type PricePanel struct {
	Loading       bool   `json:"loading"`
	Display       string `json:"display"`
	Value         *int64 `json:"value,omitempty"`
	OldPrice      string `json:"old_price,omitempty"`
	OldValue      *int64 `json:"old_value,omitempty"`
	DiscountBadge string `json:"discount_badge,omitempty"`
	PromoText     string `json:"promo_text,omitempty"`
}

// priceResult последний примененный ответ сервиса цен
type priceResult struct {
	failed        bool
	final         int64
	original      int64
	discount      int
	quoteOldPrice *int64
	promoText     string
}

// buildPricePanel формирует блок цены. Приоритет старой цены:
// скидка по дате, затем старая цена сервиса, иначе ничего.
func buildPricePanel(loc *Locale, loading bool, res *priceResult) PricePanel {
	panel := PricePanel{Loading: loading, Display: loc.Placeholder}
	if res == nil || res.failed {
		return panel
	}

	final := res.final
	panel.Display = loc.FormatAmount(final)
	panel.Value = &final
	panel.PromoText = res.promoText

	switch {
	case res.discount > 0:
		original := res.original
		panel.OldPrice = loc.FormatAmount(original)
		panel.OldValue = &original
		panel.DiscountBadge = fmt.Sprintf(loc.Price.DiscountBadge, res.discount)
	case res.quoteOldPrice != nil:
		old := *res.quoteOldPrice
		panel.OldPrice = loc.FormatAmount(old)
		panel.OldValue = &old
	}

	return panel
}

// resultFromQuote применяет скидку по дате к ответу сервиса
func resultFromQuote(quote *domain.PriceQuote, discount int) *priceResult {
	final, original := ApplyDiscount(quote.Price, discount)
	res := &priceResult{
		final:     final,
		original:  original,
		discount:  discount,
		promoText: quote.PromoText,
	}
	if quote.OldPrice != nil && quote.OldPrice.IsPositive() {
		old := quote.OldPrice.Round(0).IntPart()
		res.quoteOldPrice = &old
	}
	return res
}
