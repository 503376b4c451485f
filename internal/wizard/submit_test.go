package wizard

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "79991234567", DigitsOnly("+7 (999) 123-45-67"))
	assert.Equal(t, "", DigitsOnly("n/a"))
}

func TestDeepLink_EncodesSpacesAsPercent20(t *testing.T) {
	link := DeepLink("wa.me", "79991234567", "Имя: Анна & Co\nИТОГО: 100")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/79991234567?text="))
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Имя: Анна & Co\nИТОГО: 100", u.Query().Get("text"))
}

func TestDeepLink_MatchesURIComponentEncoding(t *testing.T) {
	link := DeepLink("wa.me", "79991234567", "Итого: 2700 ₽ (было 3000 ₽)! it's *new*")

	assert.Contains(t, link, "(")
	assert.Contains(t, link, ")")
	assert.Contains(t, link, "!")
	assert.Contains(t, link, "'")
	assert.Contains(t, link, "*")
	assert.NotContains(t, link, "%28")
	assert.NotContains(t, link, "%2A")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Итого: 2700 ₽ (было 3000 ₽)! it's *new*", u.Query().Get("text"))
}

func TestValidateContact(t *testing.T) {
	loc := MustLoadLocale("ru")

	err := validateContact(loc, Contact{Name: "", Phone: "123"}.normalize())
	var blockingErr *BlockingError
	require.ErrorAs(t, err, &blockingErr)
	assert.Equal(t, "Пожалуйста, заполните имя и телефон", blockingErr.Message)
	assert.ErrorIs(t, err, domain.ErrContactRequired)

	err = validateContact(loc, Contact{Name: "Анна", Phone: "   "}.normalize())
	assert.ErrorIs(t, err, domain.ErrContactRequired)

	assert.NoError(t, validateContact(loc, Contact{Name: " Анна ", Phone: "+7 999"}.normalize()))
}

func cleaningState() *State {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	final, original := int64(2700), int64(3000)

	s := NewState()
	s.CurrentStep = StepSummary
	s.SelectedDate = &date
	s.SelectedDiscountPercent = 10
	s.Level = domain.LevelGeneral
	s.AreaM2 = 60
	s.SelectedExtraServiceIDs = []int64{1}
	s.CalculatedPrice = &final
	s.OriginalPrice = &original
	return s
}

func TestBuildMessage_Cleaning(t *testing.T) {
	loc := MustLoadLocale("ru")
	contact := Contact{Name: "Анна", Phone: "+79990000000", Address: "ул. Ленина 1", Time: "10:00", Comment: "Домофон 12"}

	msg := BuildMessage(loc, testCatalog(), cleaningState(), contact)

	assert.True(t, strings.HasPrefix(msg, "🧹 ЗАЯВКА НА УБОРКУ\n\n"))
	assert.Contains(t, msg, "👤 Имя: Анна\n")
	assert.Contains(t, msg, "📍 Адрес: ул. Ленина 1\n")
	assert.Contains(t, msg, "📅 Дата: 15 Июнь 2024\n")
	assert.Contains(t, msg, "⏰ Время: 10:00\n")
	assert.Contains(t, msg, "🔹 Тип: GENERAL\n")
	assert.Contains(t, msg, "🔹 Площадь: 60 м²\n")
	assert.Contains(t, msg, "➕ Мытье окон\n")
	assert.Contains(t, msg, "🎉 Скидка: 10%\n")
	assert.Contains(t, msg, "💰 ИТОГО: 2700 ₽ (было 3000 ₽)")
	assert.True(t, strings.HasSuffix(msg, "\n\n💬 Комментарий: Домофон 12"))
}

func TestBuildMessage_DryCleaning(t *testing.T) {
	loc := MustLoadLocale("ru")
	price := int64(4500)

	s := NewState()
	s.ServiceType = domain.ServiceTypeDryCleaning
	s.setDryCleaningQuantity(10, decimal.NewFromInt(3))
	s.CalculatedPrice = &price
	s.OriginalPrice = &price

	msg := BuildMessage(loc, testCatalog(), s, Contact{Name: "Иван", Phone: "123"})

	assert.True(t, strings.HasPrefix(msg, "🧹 ЗАЯВКА НА ХИМЧИСТКУ\n"))
	assert.Contains(t, msg, "🔹 Химчистка мебели\n")
	assert.Contains(t, msg, "   • Диван: 3 шт\n")
	assert.NotContains(t, msg, "Адрес")
	assert.NotContains(t, msg, "было")
	assert.True(t, strings.HasSuffix(msg, "💰 ИТОГО: 4500 ₽"))
}

func TestBuildOrder(t *testing.T) {
	order := buildOrder(cleaningState(), Contact{Name: "Анна", Phone: "123"})

	assert.Equal(t, domain.ServiceTypeCleaning, order.ServiceType)
	assert.Equal(t, domain.LevelGeneral, order.Level)
	assert.Equal(t, 60, order.Area)
	assert.Equal(t, []int64{1}, order.ExtraServiceIDs)
	assert.Equal(t, int64(2700), order.TotalPrice)
	assert.Equal(t, int64(3000), order.OriginalPrice)
	assert.Equal(t, 10, order.AppliedDiscountPercent)
	require.NotNil(t, order.DesiredDate)
	assert.Equal(t, "2024-06-15", *order.DesiredDate)
	assert.Nil(t, order.Address)
	assert.Nil(t, order.Comment)
}

func TestBuildSummary(t *testing.T) {
	loc := MustLoadLocale("ru")
	summary := BuildSummary(loc, testCatalog(), cleaningState())

	require.Len(t, summary.Items, 6)
	assert.Equal(t, SummaryItem{Label: "📅 Дата", Value: "15 Июнь"}, summary.Items[0])
	assert.Equal(t, "Уборка", summary.Items[1].Value)
	assert.Equal(t, "60 м²", summary.Items[3].Value)
	assert.Equal(t, "Мытье окон", summary.Items[4].Value)
	assert.Equal(t, SummaryItem{Label: "🎉 Скидка", Value: "-10%", Accent: true}, summary.Items[5])
	assert.Equal(t, "2700 ₽", summary.Total)
}
