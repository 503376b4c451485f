package wizard

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// DefaultMessagingHost хост ссылок мессенджера
const DefaultMessagingHost = "wa.me"

// Contact контактные данные из формы заявки
type Contact struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
	Time    string `json:"time"`
	Comment string `json:"comment"`
}

var contactValidator = validator.New()

// normalize обрезает пробелы во всех полях
func (c Contact) normalize() Contact {
	return Contact{
		Name:    strings.TrimSpace(c.Name),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
		Time:    strings.TrimSpace(c.Time),
		Comment: strings.TrimSpace(c.Comment),
	}
}

// validateContact проверяет обязательные поля после обрезки пробелов
func validateContact(loc *Locale, c Contact) error {
	if err := contactValidator.Struct(c); err != nil {
		return blocking(fmt.Errorf("%w: %v", domain.ErrContactRequired, err), loc.Errors.ContactRequired)
	}
	return nil
}

// DigitsOnly оставляет в номере только цифры
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// uriComponentUnescape возвращает символы, которые encodeURIComponent оставляет как есть
var uriComponentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// DeepLink строит ссылку мессенджера с предзаполненным текстом.
// Текст кодируется так же, как encodeURIComponent.
func DeepLink(host, contact, message string) string {
	text := uriComponentUnescape.Replace(url.QueryEscape(message))
	return fmt.Sprintf("https://%s/%s?text=%s", host, contact, text)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefOr(v *int64, def int64) int64 {
	if v == nil {
		return def
	}
	return *v
}

// buildOrder фиксирует снимок состояния и контактов
func buildOrder(s *State, c Contact) *domain.Order {
	order := &domain.Order{
		Name:                   c.Name,
		Phone:                  c.Phone,
		Address:                optional(c.Address),
		ServiceType:            s.ServiceType,
		Level:                  domain.LevelBasic,
		TotalPrice:             derefOr(s.CalculatedPrice, 0),
		OriginalPrice:          derefOr(s.OriginalPrice, 0),
		DesiredTime:            optional(c.Time),
		AppliedDiscountPercent: s.SelectedDiscountPercent,
		Comment:                optional(c.Comment),
	}

	if s.SelectedDate != nil {
		order.DesiredDate = optional(s.SelectedDate.Format(domain.DateLayout))
	}

	if s.ServiceType == domain.ServiceTypeCleaning {
		order.Level = s.Level
		order.Area = s.AreaM2
		order.ExtraServiceIDs = append([]int64(nil), s.SelectedExtraServiceIDs...)
	} else {
		order.DryCleaning = lo.Assign(s.DryCleaningQuantities)
	}

	return order
}

// BuildMessage формирует текст заявки для мессенджера
func BuildMessage(loc *Locale, catalog *domain.Catalog, s *State, c Contact) string {
	m := loc.Message
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line(m.Title, loc.RequestTitles[s.ServiceType])
	b.WriteByte('\n')
	line(m.Name, c.Name)
	line(m.Phone, c.Phone)
	if c.Address != "" {
		line(m.Address, c.Address)
	}

	b.WriteByte('\n')
	b.WriteString(m.Parameters + "\n")

	if s.SelectedDate != nil {
		line(m.Date, loc.LongDate(*s.SelectedDate))
	}
	if c.Time != "" {
		line(m.Time, c.Time)
	}

	if s.ServiceType == domain.ServiceTypeCleaning {
		line(m.Level, loc.LevelTitle(s.Level))
		line(m.Area, s.AreaM2, loc.Units.Area)
		for _, id := range s.SelectedExtraServiceIDs {
			if item, ok := catalog.FindExtraService(id); ok {
				line(m.Extra, item.Name)
			}
		}
	} else {
		b.WriteString(m.DryCleaning + "\n")
		for _, id := range s.DryCleaningIDs() {
			item, ok := catalog.FindDryCleaningItem(id)
			if !ok {
				continue
			}
			line(m.Item, item.Name, s.DryCleaningQuantities[id].String(), loc.UnitLabel(item.PricingMode))
		}
	}

	if s.SelectedDiscountPercent > 0 {
		line(m.Discount, s.SelectedDiscountPercent)
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, m.Total, derefOr(s.CalculatedPrice, 0), loc.Currency)
	if s.SelectedDiscountPercent > 0 {
		fmt.Fprintf(&b, m.Original, derefOr(s.OriginalPrice, 0), loc.Currency)
	}

	if c.Comment != "" {
		b.WriteString("\n\n")
		fmt.Fprintf(&b, m.Comment, c.Comment)
	}

	return b.String()
}

// SummaryItem строка сводки заказа на шаге 4
type SummaryItem struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Accent bool   `json:"accent,omitempty"`
}

// Summary сводка заказа
type Summary struct {
	Items []SummaryItem `json:"items"`
	Total string        `json:"total"`
}

// BuildSummary строит сводку заказа только для чтения
func BuildSummary(loc *Locale, catalog *domain.Catalog, s *State) *Summary {
	var items []SummaryItem

	if s.SelectedDate != nil {
		items = append(items, SummaryItem{Label: loc.Summary.Date, Value: loc.ShortDate(*s.SelectedDate)})
	}

	items = append(items, SummaryItem{Label: loc.Summary.ServiceType, Value: loc.ServiceTypes[s.ServiceType]})

	if s.ServiceType == domain.ServiceTypeCleaning {
		items = append(items,
			SummaryItem{Label: loc.Summary.Level, Value: loc.LevelTitle(s.Level)},
			SummaryItem{Label: loc.Summary.Area, Value: fmt.Sprintf("%d %s", s.AreaM2, loc.Units.Area)},
		)
		var names []string
		for _, id := range s.SelectedExtraServiceIDs {
			if item, ok := catalog.FindExtraService(id); ok {
				names = append(names, item.Name)
			}
		}
		if len(names) > 0 {
			items = append(items, SummaryItem{Label: loc.Summary.Extras, Value: strings.Join(names, ", ")})
		}
	}

	if s.SelectedDiscountPercent > 0 {
		items = append(items, SummaryItem{
			Label:  loc.Summary.Discount,
			Value:  fmt.Sprintf("-%d%%", s.SelectedDiscountPercent),
			Accent: true,
		})
	}

	return &Summary{
		Items: items,
		Total: fmt.Sprintf("%d %s", derefOr(s.CalculatedPrice, 0), loc.Currency),
	}
}
