package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/avc/booking-wizard/internal/metrics"
	"github.com/facebookgo/clock"
	"go.uber.org/zap"
)

// Config настройки контроллера мастера
type Config struct {
	SessionID     string
	Locale        *Locale
	Clock         clock.Clock
	Location      *time.Location
	DebounceDelay time.Duration
	MessagingHost string
	ContactNumber string
	Metrics       *metrics.WizardMetrics
}

// SubmitResult результат успешной отправки заявки
type SubmitResult struct {
	DeepLink string        `json:"deep_link"`
	Message  string        `json:"message"`
	Order    *domain.Order `json:"order"`
}

// Controller управляет состоянием одной сессии мастера.
// Все изменения состояния идут через методы контроллера под блокировкой.
type Controller struct {
	mu sync.Mutex

	sessionID     string
	state         *State
	page          MonthPage
	catalog       *domain.Catalog
	discounts     domain.DiscountCalendar
	pricing       domain.PricingClient
	orders        domain.OrderSink
	loc           *Locale
	clock         clock.Clock
	location      *time.Location
	debouncer     *Debouncer
	messagingHost string
	contactNumber string
	logger        *zap.Logger
	metrics       *metrics.WizardMetrics

	ctx    context.Context
	cancel context.CancelFunc

	// seq номер последнего запроса цены; применяется только ответ с этим номером
	seq      uint64
	loading  bool
	price    *priceResult
	summary  *Summary
	inflight sync.WaitGroup
}

// NewController создает контроллер. catalog и discounts загружаются один раз при старте сессии.
func NewController(
	cfg Config,
	catalog *domain.Catalog,
	discounts domain.DiscountCalendar,
	pricing domain.PricingClient,
	orders domain.OrderSink,
	logger *zap.Logger,
) *Controller {
	if cfg.Locale == nil {
		cfg.Locale = MustLoadLocale(DefaultLocale)
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.MessagingHost == "" {
		cfg.MessagingHost = DefaultMessagingHost
	}
	if catalog == nil {
		catalog = &domain.Catalog{}
	}
	if discounts == nil {
		discounts = domain.DiscountCalendar{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{
		sessionID:     cfg.SessionID,
		state:         NewState(),
		catalog:       catalog,
		discounts:     discounts,
		pricing:       pricing,
		orders:        orders,
		loc:           cfg.Locale,
		clock:         cfg.Clock,
		location:      cfg.Location,
		debouncer:     NewDebouncer(cfg.Clock, cfg.DebounceDelay),
		messagingHost: cfg.MessagingHost,
		contactNumber: cfg.ContactNumber,
		logger:        logger.With(zap.String("session_id", cfg.SessionID)),
		metrics:       cfg.Metrics,
		ctx:           ctx,
		cancel:        cancel,
	}

	today := c.today()
	c.page = MonthPage{Year: today.Year(), Month: today.Month()}

	return c
}

// SessionID возвращает идентификатор сессии
func (c *Controller) SessionID() string {
	return c.sessionID
}

func (c *Controller) today() time.Time {
	return DateOf(c.clock.Now().In(c.location))
}

// SelectDate выбирает дату. Прошедшие даты недоступны.
func (c *Controller) SelectDate(raw string) error {
	date, err := ParseDate(raw)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Completed {
		return domain.ErrWizardCompleted
	}
	if date.Before(c.today()) {
		return fmt.Errorf("%w: %s is in the past", domain.ErrDateUnavailable, raw)
	}

	c.state.SelectedDate = &date
	c.state.SelectedDiscountPercent = c.discounts.PercentFor(date)
	c.page = MonthPage{Year: date.Year(), Month: date.Month()}

	c.recalculateLocked()
	return nil
}

// PrevMonth листает календарь на месяц назад
func (c *Controller) PrevMonth() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = c.page.Prev()
}

// NextMonth листает календарь на месяц вперед
func (c *Controller) NextMonth() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = c.page.Next()
}

// GoToStep переходит на шаг n. Шаги после первого требуют выбранной даты.
func (c *Controller) GoToStep(n Step) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.goToStepLocked(n)
}

// Next переходит на следующий шаг
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.goToStepLocked(c.state.CurrentStep + 1)
}

// Back возвращается на предыдущий шаг
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.goToStepLocked(c.state.CurrentStep - 1)
}

func (c *Controller) goToStepLocked(n Step) error {
	if c.state.Completed {
		return domain.ErrWizardCompleted
	}
	if !n.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidStep, n)
	}
	if n > StepDate && c.state.SelectedDate == nil {
		return domain.ErrDateRequired
	}

	c.state.CurrentStep = n

	switch n {
	case StepParameters:
		c.recalculateLocked()
	case StepSummary:
		c.summary = BuildSummary(c.loc, c.catalog, c.state)
	}

	return nil
}

// SetServiceType выбирает тип услуги
func (c *Controller) SetServiceType(t domain.ServiceType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidService, t)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Completed {
		return domain.ErrWizardCompleted
	}
	c.state.ServiceType = t
	return nil
}

// SetLevel выбирает уровень уборки и сразу пересчитывает цену
func (c *Controller) SetLevel(level domain.Level) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidLevel, level)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Completed {
		return domain.ErrWizardCompleted
	}
	c.state.Level = level
	c.recalculateLocked()
	return nil
}

// SetArea меняет площадь. Пересчет откладывается до паузы во вводе.
func (c *Controller) SetArea(area int) error {
	if area < 1 {
		area = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Completed {
		return domain.ErrWizardCompleted
	}
	c.state.AreaM2 = area
	c.debouncer.Trigger(c.debouncedRecalculate)
	return nil
}

// ToggleExtraService добавляет или убирает дополнительную услугу
func (c *Controller) ToggleExtraService(id int64) (bool, error) {
	if _, ok := c.catalog.FindExtraService(id); !ok {
		return false, fmt.Errorf("%w: extra service %d", domain.ErrUnknownService, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Completed {
		return false, domain.ErrWizardCompleted
	}
	selected := c.state.toggleExtraService(id)
	c.recalculateLocked()
	return selected, nil
}

// SetDryCleaningQuantity задает количество объекта химчистки из сырого ввода.
// Ноль, пустой или некорректный ввод убирает объект из заказа.
func (c *Controller) SetDryCleaningQuantity(id int64, raw string) error {
	if _, ok := c.catalog.FindDryCleaningItem(id); !ok {
		return fmt.Errorf("%w: dry cleaning item %d", domain.ErrUnknownService, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Completed {
		return domain.ErrWizardCompleted
	}
	c.state.setDryCleaningQuantity(id, ParseQuantity(raw))
	c.recalculateLocked()
	return nil
}

// Recalculate запускает пересчет цены немедленно
func (c *Controller) Recalculate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Completed {
		return domain.ErrWizardCompleted
	}
	c.recalculateLocked()
	return nil
}

func (c *Controller) debouncedRecalculate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Completed {
		return
	}
	c.recalculateLocked()
}

// recalculateLocked выдает новый номер запроса и запрашивает цену в фоне.
// Скидка фиксируется на момент запроса.
func (c *Controller) recalculateLocked() {
	if c.pricing == nil {
		return
	}

	c.debouncer.Cancel()

	c.seq++
	seq := c.seq
	params := BuildPriceParams(c.state)
	discount := c.state.SelectedDiscountPercent
	c.loading = true

	c.inflight.Add(1)
	go c.queryPrice(seq, params, discount)
}

func (c *Controller) queryPrice(seq uint64, params domain.PriceParams, discount int) {
	defer c.inflight.Done()

	start := time.Now()
	quote, err := c.pricing.GetPrice(c.ctx, params)
	elapsed := time.Since(start).Seconds()

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.metrics.ObservePriceQuery("stale", elapsed)
		c.logger.Debug("dropping stale price response",
			zap.Uint64("seq", seq),
			zap.Uint64("latest_seq", c.seq),
		)
		return
	}

	c.loading = false

	if err == nil && quote == nil {
		err = errors.New("empty price response")
	}
	if err != nil {
		c.metrics.ObservePriceQuery("error", elapsed)
		if !errors.Is(err, context.Canceled) {
			c.logger.Warn("price calculation failed", zap.Uint64("seq", seq), zap.Error(err))
		}
		c.price = &priceResult{failed: true}
		return
	}

	c.metrics.ObservePriceQuery("ok", elapsed)

	res := resultFromQuote(quote, discount)
	c.price = res
	final, original := res.final, res.original
	c.state.CalculatedPrice = &final
	c.state.OriginalPrice = &original

	if c.state.CurrentStep == StepSummary && !c.state.Completed {
		c.summary = BuildSummary(c.loc, c.catalog, c.state)
	}
}

// Submit проверяет контакты, формирует заявку и ссылку мессенджера.
// Сохранение заказа выполняется по возможности: его ошибка не блокирует отправку.
func (c *Controller) Submit(ctx context.Context, contact Contact) (*SubmitResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Completed {
		return nil, domain.ErrWizardCompleted
	}
	if c.state.CurrentStep != StepSummary {
		return nil, fmt.Errorf("%w: submit is only available on step %d", domain.ErrInvalidStep, StepSummary)
	}

	contact = contact.normalize()
	if err := validateContact(c.loc, contact); err != nil {
		c.metrics.ObserveSubmission("blocked")
		return nil, err
	}

	number := DigitsOnly(c.contactNumber)
	if number == "" {
		c.metrics.ObserveSubmission("blocked")
		return nil, blocking(domain.ErrContactNotSet, c.loc.Errors.ContactNotConfigured)
	}

	order := buildOrder(c.state, contact)
	text := BuildMessage(c.loc, c.catalog, c.state, contact)
	link := DeepLink(c.messagingHost, number, text)

	if c.orders != nil {
		if err := c.orders.Persist(ctx, c.sessionID, order, link); err != nil {
			c.logger.Warn("failed to persist order", zap.Error(err))
		}
	}

	c.debouncer.Cancel()
	c.state.Completed = true
	c.metrics.ObserveSubmission("ok")

	c.logger.Info("order submitted",
		zap.String("service_type", string(order.ServiceType)),
		zap.Int64("total_price", order.TotalPrice),
	)

	return &SubmitResult{DeepLink: link, Message: text, Order: order}, nil
}

// Wait ждет завершения всех запросов цены в полете
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Close отменяет отложенный пересчет и запросы в полете
func (c *Controller) Close() {
	c.debouncer.Cancel()
	c.cancel()
}
