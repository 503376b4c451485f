package wizard

import (
	"embed"
	"fmt"
	"time"

	"github.com/avc/booking-wizard/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// DefaultLocale используется, если код локали не задан
const DefaultLocale = "ru"

// Locale содержит тексты мастера для одного языка
type Locale struct {
	Code          string                        `yaml:"code"`
	Language      string                        `yaml:"language"`
	Currency      string                        `yaml:"currency"`
	Placeholder   string                        `yaml:"placeholder"`
	Months        []string                      `yaml:"months"`
	ServiceTypes  map[domain.ServiceType]string `yaml:"service_types"`
	RequestTitles map[domain.ServiceType]string `yaml:"request_titles"`
	Levels        map[domain.Level]string       `yaml:"levels"`

	Units struct {
		Area  string `yaml:"area"`
		Piece string `yaml:"piece"`
	} `yaml:"units"`

	Info struct {
		Date     string `yaml:"date"`
		Discount string `yaml:"discount"`
	} `yaml:"info"`

	Price struct {
		DiscountBadge string `yaml:"discount_badge"`
	} `yaml:"price"`

	Summary struct {
		Date        string `yaml:"date"`
		ServiceType string `yaml:"service_type"`
		Level       string `yaml:"level"`
		Area        string `yaml:"area"`
		Extras      string `yaml:"extras"`
		Discount    string `yaml:"discount"`
	} `yaml:"summary"`

	Message struct {
		Title       string `yaml:"title"`
		Name        string `yaml:"name"`
		Phone       string `yaml:"phone"`
		Address     string `yaml:"address"`
		Parameters  string `yaml:"parameters"`
		Date        string `yaml:"date"`
		Time        string `yaml:"time"`
		Level       string `yaml:"level"`
		Area        string `yaml:"area"`
		DryCleaning string `yaml:"dry_cleaning"`
		Item        string `yaml:"item"`
		Extra       string `yaml:"extra"`
		Discount    string `yaml:"discount"`
		Total       string `yaml:"total"`
		Original    string `yaml:"original"`
		Comment     string `yaml:"comment"`
	} `yaml:"message"`

	Errors struct {
		ContactRequired      string `yaml:"contact_required"`
		ContactNotConfigured string `yaml:"contact_not_configured"`
	} `yaml:"errors"`

	printer *message.Printer
}

// LoadLocale загружает встроенную локаль по коду
func LoadLocale(code string) (*Locale, error) {
	if code == "" {
		code = DefaultLocale
	}

	content, err := localesFS.ReadFile("locales/" + code + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("locale %q is not available: %w", code, err)
	}

	var loc Locale
	if err := yaml.Unmarshal(content, &loc); err != nil {
		return nil, fmt.Errorf("failed to parse locale %q: %w", code, err)
	}

	if len(loc.Months) != 12 {
		return nil, fmt.Errorf("locale %q: expected 12 month names, got %d", code, len(loc.Months))
	}

	tag, err := language.Parse(loc.Language)
	if err != nil {
		tag = language.Russian
	}
	loc.printer = message.NewPrinter(tag)

	return &loc, nil
}

// MustLoadLocale как LoadLocale, но паникует при ошибке. Только для встроенных локалей.
func MustLoadLocale(code string) *Locale {
	loc, err := LoadLocale(code)
	if err != nil {
		panic(err)
	}
	return loc
}

// MonthName возвращает название месяца
func (l *Locale) MonthName(m time.Month) string {
	return l.Months[int(m)-1]
}

// MonthTitle форматирует заголовок календаря: "Июнь 2024"
func (l *Locale) MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", l.MonthName(month), year)
}

// LongDate форматирует дату: "15 Июнь 2024"
func (l *Locale) LongDate(d time.Time) string {
	return fmt.Sprintf("%d %s %d", d.Day(), l.MonthName(d.Month()), d.Year())
}

// ShortDate форматирует дату без года: "15 Июнь"
func (l *Locale) ShortDate(d time.Time) string {
	return fmt.Sprintf("%d %s", d.Day(), l.MonthName(d.Month()))
}

// FormatAmount форматирует целую сумму с разделителями разрядов и валютой
func (l *Locale) FormatAmount(amount int64) string {
	return l.printer.Sprintf("%d", amount) + " " + l.Currency
}

// LevelTitle возвращает отображаемое название уровня
func (l *Locale) LevelTitle(level domain.Level) string {
	if title, ok := l.Levels[level]; ok {
		return title
	}
	return string(level)
}

// UnitLabel возвращает единицу измерения для режима цены
func (l *Locale) UnitLabel(mode domain.PricingMode) string {
	if mode.PerArea() {
		return l.Units.Area
	}
	return l.Units.Piece
}
