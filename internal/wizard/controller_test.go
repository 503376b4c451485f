package wizard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/avc/booking-wizard/internal/domain"
	domainmocks "github.com/avc/booking-wizard/internal/domain/mocks"
	"github.com/facebookgo/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestController(t *testing.T, pricing domain.PricingClient, sink domain.OrderSink, contactNumber string) (*Controller, *clock.Mock) {
	t.Helper()

	clk := clock.NewMock()
	clk.Add(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC).Sub(clk.Now()))

	discounts := domain.NewDiscountCalendar(map[string]int{"2024-06-15": 10})
	logger, _ := zap.NewDevelopment()

	ctrl := NewController(Config{
		SessionID:     "session-1",
		Locale:        MustLoadLocale("ru"),
		Clock:         clk,
		Location:      time.UTC,
		ContactNumber: contactNumber,
	}, testCatalog(), discounts, pricing, sink, logger)

	t.Cleanup(func() {
		ctrl.Close()
		ctrl.Wait()
	})

	return ctrl, clk
}

func quote(price int64) *domain.PriceQuote {
	return &domain.PriceQuote{Price: decimal.NewFromInt(price)}
}

func priceValue(ctrl *Controller) int64 {
	v := ctrl.View().Price.Value
	if v == nil {
		return -1
	}
	return *v
}

func TestController_InitialView(t *testing.T) {
	ctrl, _ := newTestController(t, nil, nil, "")

	view := ctrl.View()
	assert.Equal(t, StepDate, view.Step)
	assert.False(t, view.CanProceed)
	assert.Equal(t, "Июнь 2024", view.Calendar.Title)
	assert.Len(t, view.Calendar.Cells, 35)
	assert.Equal(t, "—", view.Price.Display)
	assert.Nil(t, view.SelectedDate)
}

func TestController_StepGating(t *testing.T) {
	ctrl, _ := newTestController(t, nil, nil, "")

	assert.ErrorIs(t, ctrl.Next(), domain.ErrDateRequired)
	assert.ErrorIs(t, ctrl.GoToStep(StepSummary), domain.ErrDateRequired)
	assert.ErrorIs(t, ctrl.GoToStep(Step(5)), domain.ErrInvalidStep)
	assert.ErrorIs(t, ctrl.Back(), domain.ErrInvalidStep)
	assert.Equal(t, StepDate, ctrl.View().Step)

	require.NoError(t, ctrl.SelectDate("2024-06-12"))
	require.NoError(t, ctrl.Next())
	assert.Equal(t, StepServices, ctrl.View().Step)
	require.NoError(t, ctrl.Back())
	assert.Equal(t, StepDate, ctrl.View().Step)
}

func TestController_SelectDate(t *testing.T) {
	ctrl, _ := newTestController(t, nil, nil, "")

	assert.ErrorIs(t, ctrl.SelectDate("2024-06-09"), domain.ErrDateUnavailable)
	assert.ErrorIs(t, ctrl.SelectDate("not-a-date"), domain.ErrDateUnavailable)

	require.NoError(t, ctrl.SelectDate("2024-06-10"))
	require.NoError(t, ctrl.SelectDate("2024-06-15"))

	view := ctrl.View()
	require.NotNil(t, view.SelectedDate)
	assert.Equal(t, "📅 15 Июнь 2024", view.SelectedDate.Display)
	assert.Equal(t, "🎉 Скидка 10% на эту дату!", view.SelectedDate.DiscountBanner)
	assert.True(t, view.CanProceed)

	cell := view.Calendar.Cells[StartOffset(2024, time.June)+14]
	assert.True(t, cell.Selected)
	assert.Empty(t, cell.Badge)
}

func TestController_MonthNavigation(t *testing.T) {
	ctrl, _ := newTestController(t, nil, nil, "")

	for i := 0; i < 7; i++ {
		ctrl.NextMonth()
	}
	view := ctrl.View()
	assert.Equal(t, "Январь 2025", view.Calendar.Title)
	assert.Equal(t, 2025, view.Calendar.Year)

	ctrl.PrevMonth()
	assert.Equal(t, "Декабрь 2024", ctrl.View().Calendar.Title)
}

func TestController_EndToEndCleaningWithDiscount(t *testing.T) {
	pricing := domainmocks.NewPricingClientMock(t)
	pricing.EXPECT().GetPrice(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, params domain.PriceParams) (*domain.PriceQuote, error) {
			return quote(int64(params.Area) * 50), nil
		})

	ctrl, clk := newTestController(t, pricing, nil, "")

	require.NoError(t, ctrl.SelectDate("2024-06-15"))
	require.NoError(t, ctrl.Next())
	require.NoError(t, ctrl.SetServiceType(domain.ServiceTypeCleaning))
	require.NoError(t, ctrl.Next())
	assert.Equal(t, domain.ServiceTypeCleaning, ctrl.View().ParamPanel)

	require.NoError(t, ctrl.SetLevel(domain.LevelGeneral))
	require.NoError(t, ctrl.SetArea(55))
	require.NoError(t, ctrl.SetArea(60))

	ctrl.Wait()
	assert.Equal(t, int64(2250), priceValue(ctrl))

	clk.Add(DefaultDebounceDelay)

	require.Eventually(t, func() bool {
		return priceValue(ctrl) == 2700
	}, time.Second, 5*time.Millisecond)

	ctrl.Wait()
	panel := ctrl.View().Price
	assert.False(t, panel.Loading)
	require.NotNil(t, panel.OldValue)
	assert.Equal(t, int64(3000), *panel.OldValue)
	assert.Equal(t, "Скидка 10%", panel.DiscountBadge)

	pricing.AssertNotCalled(t, "GetPrice", mock.Anything, mock.MatchedBy(func(p domain.PriceParams) bool {
		return p.Area == 55
	}))

	require.NoError(t, ctrl.Next())
	summary := ctrl.View().Summary
	require.NotNil(t, summary)
	assert.Equal(t, "2700 ₽", summary.Total)
}

func TestController_StaleResponseIsDropped(t *testing.T) {
	release := make(chan struct{})

	pricing := domainmocks.NewPricingClientMock(t)
	pricing.EXPECT().GetPrice(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, params domain.PriceParams) (*domain.PriceQuote, error) {
			if params.Level == domain.LevelBasic {
				<-release
				return quote(1000), nil
			}
			return quote(2000), nil
		})

	ctrl, _ := newTestController(t, pricing, nil, "")

	require.NoError(t, ctrl.Recalculate())
	assert.True(t, ctrl.View().Price.Loading)

	require.NoError(t, ctrl.SetLevel(domain.LevelGeneral))

	require.Eventually(t, func() bool {
		return priceValue(ctrl) == 2000
	}, time.Second, 5*time.Millisecond)

	close(release)
	ctrl.Wait()

	assert.Equal(t, int64(2000), priceValue(ctrl))
	assert.False(t, ctrl.View().Price.Loading)
}

func TestController_PricingFailureShowsPlaceholder(t *testing.T) {
	pricing := domainmocks.NewPricingClientMock(t)
	pricing.EXPECT().GetPrice(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, params domain.PriceParams) (*domain.PriceQuote, error) {
			if params.Level == domain.LevelGeneralPlus {
				return nil, errors.New("pricing unavailable")
			}
			return quote(1000), nil
		})

	ctrl, _ := newTestController(t, pricing, nil, "")

	require.NoError(t, ctrl.Recalculate())
	ctrl.Wait()
	assert.Equal(t, int64(1000), priceValue(ctrl))

	require.NoError(t, ctrl.SetLevel(domain.LevelGeneralPlus))
	ctrl.Wait()

	panel := ctrl.View().Price
	assert.Equal(t, "—", panel.Display)
	assert.Nil(t, panel.Value)
	assert.False(t, panel.Loading)

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	require.NotNil(t, ctrl.state.CalculatedPrice)
	assert.Equal(t, int64(1000), *ctrl.state.CalculatedPrice)
}

func TestController_UnknownCatalogIDs(t *testing.T) {
	ctrl, _ := newTestController(t, nil, nil, "")

	_, err := ctrl.ToggleExtraService(99)
	assert.ErrorIs(t, err, domain.ErrUnknownService)
	assert.ErrorIs(t, ctrl.SetDryCleaningQuantity(99, "1"), domain.ErrUnknownService)
	assert.ErrorIs(t, ctrl.SetLevel("premium"), domain.ErrInvalidLevel)
	assert.ErrorIs(t, ctrl.SetServiceType("laundry"), domain.ErrInvalidService)
}

func TestController_DryCleaningQuantities(t *testing.T) {
	ctrl, _ := newTestController(t, nil, nil, "")

	require.NoError(t, ctrl.SetDryCleaningQuantity(10, "3,5"))
	assert.Equal(t, "3.5", ctrl.View().DryCleaning[0].Quantity)

	require.NoError(t, ctrl.SetDryCleaningQuantity(10, "0"))
	assert.Equal(t, "0", ctrl.View().DryCleaning[0].Quantity)
}

func goToSummary(t *testing.T, ctrl *Controller) {
	t.Helper()
	require.NoError(t, ctrl.SelectDate("2024-06-15"))
	require.NoError(t, ctrl.GoToStep(StepSummary))
}

func TestController_SubmitBlockedOnEmptyName(t *testing.T) {
	sink := domainmocks.NewOrderSinkMock(t)
	ctrl, _ := newTestController(t, nil, sink, "+7 999 123-45-67")
	goToSummary(t, ctrl)

	_, err := ctrl.Submit(context.Background(), Contact{Name: "  ", Phone: "123"})

	var blockingErr *BlockingError
	require.ErrorAs(t, err, &blockingErr)
	assert.ErrorIs(t, err, domain.ErrContactRequired)
	assert.False(t, ctrl.View().Completed)
	sink.AssertNotCalled(t, "Persist", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestController_SubmitWithoutContactNumber(t *testing.T) {
	sink := domainmocks.NewOrderSinkMock(t)
	ctrl, _ := newTestController(t, nil, sink, "")
	goToSummary(t, ctrl)

	_, err := ctrl.Submit(context.Background(), Contact{Name: "Анна", Phone: "123"})

	var blockingErr *BlockingError
	require.ErrorAs(t, err, &blockingErr)
	assert.Equal(t, "WhatsApp номер не настроен", blockingErr.Message)
	assert.ErrorIs(t, err, domain.ErrContactNotSet)
	assert.False(t, ctrl.View().Completed)
}

func TestController_SubmitOutsideSummary(t *testing.T) {
	ctrl, _ := newTestController(t, nil, nil, "79991234567")

	_, err := ctrl.Submit(context.Background(), Contact{Name: "Анна", Phone: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidStep)
}

func TestController_Submit(t *testing.T) {
	sink := domainmocks.NewOrderSinkMock(t)
	ctrl, _ := newTestController(t, nil, sink, "+7 (999) 123-45-67")
	goToSummary(t, ctrl)

	var persisted *domain.Order
	sink.EXPECT().Persist(mock.Anything, "session-1", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, order *domain.Order, deepLink string) {
			persisted = order
			assert.True(t, strings.HasPrefix(deepLink, "https://wa.me/79991234567?text="))
		}).
		Return(errors.New("order service unavailable")).Once()

	result, err := ctrl.Submit(context.Background(), Contact{Name: " Анна ", Phone: "+7 900", Comment: "Позвонить заранее"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.DeepLink, "https://wa.me/79991234567?text="))
	assert.Contains(t, result.Message, "👤 Имя: Анна\n")
	assert.Equal(t, "Анна", result.Order.Name)
	assert.Equal(t, 10, result.Order.AppliedDiscountPercent)
	assert.Same(t, result.Order, persisted)

	view := ctrl.View()
	assert.True(t, view.Completed)

	assert.ErrorIs(t, ctrl.SetLevel(domain.LevelGeneral), domain.ErrWizardCompleted)
	_, err = ctrl.Submit(context.Background(), Contact{Name: "Анна", Phone: "123"})
	assert.ErrorIs(t, err, domain.ErrWizardCompleted)
}
