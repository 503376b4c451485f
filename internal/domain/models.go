package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType представляет тип услуги мастера
type ServiceType string

const (
	ServiceTypeCleaning    ServiceType = "cleaning"
	ServiceTypeDryCleaning ServiceType = "drycleaning"
)

// Valid проверяет, что тип услуги известен
func (t ServiceType) Valid() bool {
	return t == ServiceTypeCleaning || t == ServiceTypeDryCleaning
}

// Level представляет уровень уборки
type Level string

const (
	LevelBasic       Level = "basic"
	LevelGeneral     Level = "general"
	LevelGeneralPlus Level = "general_plus"
)

// Valid проверяет, что уровень уборки известен
func (l Level) Valid() bool {
	switch l {
	case LevelBasic, LevelGeneral, LevelGeneralPlus:
		return true
	}
	return false
}

// PricingMode определяет, как считается цена позиции каталога
type PricingMode string

const (
	PricingModeFixed   PricingMode = "fixed"
	PricingModePerArea PricingMode = "per_area"
	PricingModePerUnit PricingMode = "per_unit"
)

// PerArea сообщает, считается ли цена за м²
func (m PricingMode) PerArea() bool {
	return m == PricingModePerArea
}

// CatalogItem представляет дополнительную услугу или объект химчистки
type CatalogItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	PricingMode PricingMode     `json:"pricing_mode"`
}

// Catalog представляет справочник услуг, загружаемый один раз на сессию
type Catalog struct {
	ExtraServices    []CatalogItem `json:"extra_services"`
	DryCleaningItems []CatalogItem `json:"dry_cleaning_items"`
}

// FindExtraService ищет дополнительную услугу по ID
func (c Catalog) FindExtraService(id int64) (CatalogItem, bool) {
	return findItem(c.ExtraServices, id)
}

// FindDryCleaningItem ищет объект химчистки по ID
func (c Catalog) FindDryCleaningItem(id int64) (CatalogItem, bool) {
	return findItem(c.DryCleaningItems, id)
}

func findItem(items []CatalogItem, id int64) (CatalogItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// DateLayout формат ключей календаря скидок
const DateLayout = "2006-01-02"

// DiscountCalendar сопоставляет календарную дату (YYYY-MM-DD) и процент скидки.
// Нулевые проценты не хранятся.
type DiscountCalendar map[string]int

// NewDiscountCalendar строит календарь, отбрасывая нулевые и некорректные записи
func NewDiscountCalendar(raw map[string]int) DiscountCalendar {
	cal := make(DiscountCalendar, len(raw))
	for date, percent := range raw {
		if percent <= 0 {
			continue
		}
		if _, err := time.Parse(DateLayout, date); err != nil {
			continue
		}
		if percent > 100 {
			percent = 100
		}
		cal[date] = percent
	}
	return cal
}

// PercentFor возвращает скидку на дату или 0
func (c DiscountCalendar) PercentFor(date time.Time) int {
	return c[date.Format(DateLayout)]
}

// PriceParams представляет параметры запроса к сервису цен
type PriceParams struct {
	Level                 Level
	Area                  int
	Rooms                 int
	Bathrooms             int
	ExtraServiceIDs       []int64
	DryCleaningQuantities map[int64]decimal.Decimal
}

// PriceQuote представляет ответ сервиса цен
type PriceQuote struct {
	Price     decimal.Decimal  `json:"price"`
	OldPrice  *decimal.Decimal `json:"old_price,omitempty"`
	PromoText string           `json:"promo_text,omitempty"`
}

// Order представляет заявку, отправляемую в сервис хранения заказов.
// Создается один раз при отправке и больше не меняется.
type Order struct {
	Name                   string                    `json:"name"`
	Phone                  string                    `json:"phone"`
	Address                *string                   `json:"address"`
	ServiceType            ServiceType               `json:"service_type"`
	Level                  Level                     `json:"level"`
	Area                   int                       `json:"area"`
	Rooms                  int                       `json:"rooms"`
	Bathrooms              int                       `json:"bathrooms"`
	ExtraServiceIDs        []int64                   `json:"extra_service_ids,omitempty"`
	DryCleaning            map[int64]decimal.Decimal `json:"dry_cleaning,omitempty"`
	TotalPrice             int64                     `json:"total_price"`
	OriginalPrice          int64                     `json:"original_price"`
	DesiredDate            *string                   `json:"desired_date"`
	DesiredTime            *string                   `json:"desired_time"`
	AppliedDiscountPercent int                       `json:"applied_discount_percent"`
	Comment                *string                   `json:"comment"`
}

// SubmissionStatus представляет статус доставки заявки в сервис заказов
type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "PENDING"
	SubmissionStatusDelivered SubmissionStatus = "DELIVERED"
	SubmissionStatusFailed    SubmissionStatus = "FAILED"
)

// Submission представляет запись журнала отправленных заявок
type Submission struct {
	ID          string           `json:"id"`
	SessionID   string           `json:"session_id"`
	Order       Order            `json:"order"`
	DeepLink    string           `json:"deep_link"`
	Status      SubmissionStatus `json:"status"`
	Attempts    int              `json:"attempts"`
	LastError   *string          `json:"last_error,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	DeliveredAt *time.Time       `json:"delivered_at,omitempty"`
}
