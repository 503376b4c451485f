package session

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/avc/booking-wizard/internal/utils/jwt"
	"github.com/avc/booking-wizard/internal/wizard"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// DefaultTTL время жизни неактивной сессии
const DefaultTTL = 2 * time.Hour

// Config настройки хранилища сессий
type Config struct {
	TTL    time.Duration
	Wizard wizard.Config
}

// Manager хранит контроллеры мастера по ID сессии.
// Неактивные сессии вытесняются по TTL, их контроллеры закрываются.
type Manager struct {
	cache     *gocache.Cache
	tokens    *jwt.Manager
	discounts domain.DiscountSource
	catalog   domain.CatalogSource
	pricing   domain.PricingClient
	orders    domain.OrderSink
	cfg       Config
	logger    *zap.Logger
}

// NewManager создает хранилище сессий
func NewManager(
	cfg Config,
	tokens *jwt.Manager,
	discounts domain.DiscountSource,
	catalog domain.CatalogSource,
	pricing domain.PricingClient,
	orders domain.OrderSink,
	logger *zap.Logger,
) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	cache := gocache.New(cfg.TTL, cfg.TTL/4)
	cache.OnEvicted(func(id string, value interface{}) {
		if ctrl, ok := value.(*wizard.Controller); ok {
			ctrl.Close()
			logger.Debug("session evicted", zap.String("session_id", id))
		}
	})

	return &Manager{
		cache:     cache,
		tokens:    tokens,
		discounts: discounts,
		catalog:   catalog,
		pricing:   pricing,
		orders:    orders,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start создает сессию: загружает скидки, затем каталог, и выпускает токен.
// Ошибки загрузки не прерывают сессию: мастер работает с пустыми данными.
func (m *Manager) Start(ctx context.Context) (*wizard.Controller, string, error) {
	id := uuid.NewString()

	discounts, err := m.discounts.GetDiscounts(ctx)
	if err != nil {
		m.logger.Warn("failed to load calendar discounts", zap.String("session_id", id), zap.Error(err))
		discounts = domain.DiscountCalendar{}
	}

	catalog, err := m.catalog.GetCatalog(ctx)
	if err != nil {
		m.logger.Warn("failed to load service catalog", zap.String("session_id", id), zap.Error(err))
		catalog = &domain.Catalog{}
	}

	cfg := m.cfg.Wizard
	cfg.SessionID = id
	ctrl := wizard.NewController(cfg, catalog, discounts, m.pricing, m.orders, m.logger)

	token, err := m.tokens.Generate(id)
	if err != nil {
		ctrl.Close()
		return nil, "", fmt.Errorf("session manager: failed to issue token: %w", err)
	}

	m.cache.Set(id, ctrl, gocache.DefaultExpiration)
	m.cfg.Wizard.Metrics.ObserveSessionStarted()

	m.logger.Info("session started",
		zap.String("session_id", id),
		zap.Int("discount_dates", len(discounts)),
		zap.Int("extra_services", len(catalog.ExtraServices)),
		zap.Int("dry_cleaning_items", len(catalog.DryCleaningItems)),
	)

	return ctrl, token, nil
}

// Get возвращает контроллер сессии и продлевает ее TTL
func (m *Manager) Get(id string) (*wizard.Controller, error) {
	value, ok := m.cache.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	ctrl := value.(*wizard.Controller)
	m.cache.Set(id, ctrl, gocache.DefaultExpiration)
	return ctrl, nil
}

// Resolve проверяет токен и возвращает контроллер его сессии
func (m *Manager) Resolve(token string) (*wizard.Controller, error) {
	id, err := m.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	return m.Get(id)
}

// Count возвращает число активных сессий
func (m *Manager) Count() int {
	return m.cache.ItemCount()
}

// Close закрывает все сессии
func (m *Manager) Close() {
	for _, item := range m.cache.Items() {
		if ctrl, ok := item.Object.(*wizard.Controller); ok {
			ctrl.Close()
		}
	}
	m.cache.Flush()
}
