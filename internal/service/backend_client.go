package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BackendClient реализует доступ к API калькулятора: скидки, каталог, цены и заказы.
type BackendClient struct {
	baseURL    string
	httpClient *retryablehttp.Client
	logger     *zap.Logger
}

var (
	_ domain.DiscountSource = (*BackendClient)(nil)
	_ domain.CatalogSource  = (*BackendClient)(nil)
	_ domain.PricingClient  = (*BackendClient)(nil)
	_ domain.OrderCreator   = (*BackendClient)(nil)
)

// NewBackendClient создает клиент с повторами на сетевые ошибки и 5xx
func NewBackendClient(baseURL string, timeout time.Duration, retryMax int, logger *zap.Logger) *BackendClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = timeout
	client.RetryMax = retryMax
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = time.Second
	client.Logger = newLeveledLogger(logger.Named("backend"))
	// После исчерпания повторов возвращаем последний ответ, чтобы прочитать тело ошибки
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &BackendClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		logger:     logger,
	}
}

type serviceItem struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	PriceType string          `json:"price_type"`
	Unit      string          `json:"unit"`
}

type servicesResponse struct {
	ExtraServices       []serviceItem `json:"extra_services"`
	DryCleaningServices []serviceItem `json:"dry_cleaning_services"`
}

type priceResponse struct {
	Price     *decimal.Decimal `json:"price"`
	OldPrice  *decimal.Decimal `json:"old_price"`
	PromoText string           `json:"promo_text"`
	Error     string           `json:"error"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetDiscounts получает календарь скидок
func (c *BackendClient) GetDiscounts(ctx context.Context) (domain.DiscountCalendar, error) {
	var raw map[string]int
	if err := c.getJSON(ctx, "/api/calendar-discounts/", &raw); err != nil {
		return nil, fmt.Errorf("backend client: failed to get discounts: %w", err)
	}
	return domain.NewDiscountCalendar(raw), nil
}

// GetCatalog получает справочник дополнительных услуг и химчистки
func (c *BackendClient) GetCatalog(ctx context.Context) (*domain.Catalog, error) {
	var resp servicesResponse
	if err := c.getJSON(ctx, "/api/services/", &resp); err != nil {
		return nil, fmt.Errorf("backend client: failed to get catalog: %w", err)
	}

	return &domain.Catalog{
		ExtraServices: lo.Map(resp.ExtraServices, func(s serviceItem, _ int) domain.CatalogItem {
			mode := domain.PricingModeFixed
			if s.PriceType == "per_m2" {
				mode = domain.PricingModePerArea
			}
			return domain.CatalogItem{ID: s.ID, Name: s.Name, Price: s.Price, PricingMode: mode}
		}),
		DryCleaningItems: lo.Map(resp.DryCleaningServices, func(s serviceItem, _ int) domain.CatalogItem {
			mode := domain.PricingModePerUnit
			if s.Unit == "m2" {
				mode = domain.PricingModePerArea
			}
			return domain.CatalogItem{ID: s.ID, Name: s.Name, Price: s.Price, PricingMode: mode}
		}),
	}, nil
}

// priceQuery кодирует параметры расчета. Списки передаются как JSON в query.
func priceQuery(params domain.PriceParams) (url.Values, error) {
	q := url.Values{}
	q.Set("level", string(params.Level))
	q.Set("area", strconv.Itoa(params.Area))
	q.Set("rooms", strconv.Itoa(params.Rooms))
	q.Set("bathrooms", strconv.Itoa(params.Bathrooms))

	if len(params.ExtraServiceIDs) > 0 {
		raw, err := json.Marshal(params.ExtraServiceIDs)
		if err != nil {
			return nil, err
		}
		q.Set("extra_services", string(raw))
	}

	if len(params.DryCleaningQuantities) > 0 {
		quantities := lo.MapEntries(params.DryCleaningQuantities, func(id int64, qty decimal.Decimal) (string, json.Number) {
			return strconv.FormatInt(id, 10), json.Number(qty.String())
		})
		raw, err := json.Marshal(quantities)
		if err != nil {
			return nil, err
		}
		q.Set("dry_cleaning", string(raw))
	}

	return q, nil
}

// GetPrice запрашивает цену. Ответ с полем error возвращается как *PricingError.
func (c *BackendClient) GetPrice(ctx context.Context, params domain.PriceParams) (*domain.PriceQuote, error) {
	q, err := priceQuery(params)
	if err != nil {
		return nil, fmt.Errorf("backend client: failed to encode price params: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/price/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("backend client: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var body priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("backend client: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}
		return nil, fmt.Errorf("backend client: failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || body.Error != "" {
		return nil, NewPricingError(resp.StatusCode, body.Error)
	}
	if body.Price == nil {
		return nil, fmt.Errorf("backend client: price is missing in response")
	}

	return &domain.PriceQuote{
		Price:     *body.Price,
		OldPrice:  body.OldPrice,
		PromoText: body.PromoText,
	}, nil
}

// CreateOrder сохраняет заявку в сервисе заказов. Ответ 4xx означает, что повтор не поможет.
func (c *BackendClient) CreateOrder(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("backend client: failed to encode order: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders/", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("backend client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
		var body errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return fmt.Errorf("backend client: %w: status %d: %s", ErrOrderRejected, resp.StatusCode, body.Error)

	default:
		return fmt.Errorf("backend client: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
}

func (c *BackendClient) getJSON(ctx context.Context, path string, dst any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
