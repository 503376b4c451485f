package domain

import "context"

// DiscountSource загружает календарь скидок
type DiscountSource interface {
	GetDiscounts(ctx context.Context) (DiscountCalendar, error)
}

// CatalogSource загружает справочник услуг
type CatalogSource interface {
	GetCatalog(ctx context.Context) (*Catalog, error)
}

// PricingClient запрашивает цену по параметрам услуги
type PricingClient interface {
	GetPrice(ctx context.Context, params PriceParams) (*PriceQuote, error)
}

// OrderCreator сохраняет заявку в сервисе заказов
type OrderCreator interface {
	CreateOrder(ctx context.Context, order *Order) error
}

// OrderSink принимает заявку на сохранение по принципу best-effort
type OrderSink interface {
	Persist(ctx context.Context, sessionID string, order *Order, deepLink string) error
}

// SubmissionRepository определяет методы журнала заявок
type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission *Submission) error
	GetSubmission(ctx context.Context, id string) (*Submission, error)
	MarkDelivered(ctx context.Context, id string) error
	MarkAttemptFailed(ctx context.Context, id string, reason string, maxAttempts int) error
	GetPendingSubmissions(ctx context.Context, limit int) ([]*Submission, error)
}

// SubmissionQueue принимает ID записи журнала на доставку
type SubmissionQueue interface {
	Enqueue(id string) bool
}
