package wizard

import (
	"strings"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/shopspring/decimal"
)

// ExtraServiceRow строка дополнительной услуги
type ExtraServiceRow struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceLabel string `json:"price_label"`
	Selected   bool   `json:"selected"`
}

// DryCleaningRow строка объекта химчистки с полем количества
type DryCleaningRow struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceLabel string `json:"price_label"`
	UnitLabel  string `json:"unit_label"`
	Quantity   string `json:"quantity"`
}

// PriceLabel форматирует цену позиции: "300 ₽" или "25 ₽/м²"
func PriceLabel(loc *Locale, item domain.CatalogItem) string {
	label := item.Price.String() + " " + loc.Currency
	if item.PricingMode.PerArea() {
		label += "/" + loc.Units.Area
	}
	return label
}

// BuildExtraServiceRows строит строки дополнительных услуг из каталога и состояния
func BuildExtraServiceRows(loc *Locale, catalog *domain.Catalog, s *State) []ExtraServiceRow {
	rows := make([]ExtraServiceRow, 0, len(catalog.ExtraServices))
	for _, item := range catalog.ExtraServices {
		rows = append(rows, ExtraServiceRow{
			ID:         item.ID,
			Name:       item.Name,
			PriceLabel: PriceLabel(loc, item),
			Selected:   s.HasExtraService(item.ID),
		})
	}
	return rows
}

// BuildDryCleaningRows строит строки химчистки из каталога и состояния
func BuildDryCleaningRows(loc *Locale, catalog *domain.Catalog, s *State) []DryCleaningRow {
	rows := make([]DryCleaningRow, 0, len(catalog.DryCleaningItems))
	for _, item := range catalog.DryCleaningItems {
		qty := "0"
		if v, ok := s.DryCleaningQuantities[item.ID]; ok {
			qty = v.String()
		}
		rows = append(rows, DryCleaningRow{
			ID:         item.ID,
			Name:       item.Name,
			PriceLabel: PriceLabel(loc, item),
			UnitLabel:  loc.UnitLabel(item.PricingMode),
			Quantity:   qty,
		})
	}
	return rows
}

const (
	// MaxDryCleaningQuantity верхняя граница количества одного объекта химчистки
	MaxDryCleaningQuantity = 10000
	maxQuantityInput       = 16
	quantityScale          = 2
)

// ParseQuantity разбирает ввод количества. Пустой, некорректный
// или отрицательный ввод дает ноль. Экспоненциальная запись не принимается,
// дробная часть округляется до сотых, значение ограничено MaxDryCleaningQuantity.
func ParseQuantity(raw string) decimal.Decimal {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" || len(raw) > maxQuantityInput || strings.ContainsAny(raw, "eE") {
		return decimal.Zero
	}
	qty, err := decimal.NewFromString(raw)
	if err != nil || qty.IsNegative() {
		return decimal.Zero
	}
	qty = qty.Round(quantityScale)
	if limit := decimal.NewFromInt(MaxDryCleaningQuantity); qty.GreaterThan(limit) {
		return limit
	}
	return qty
}
