package wizard

import (
	"fmt"
	"time"

	"github.com/avc/booking-wizard/internal/domain"
)

// DayCell представляет ячейку сетки календаря
type DayCell struct {
	Empty           bool     `json:"empty"`
	Day             int      `json:"day,omitempty"`
	Date            string   `json:"date,omitempty"`
	Disabled        bool     `json:"disabled"`
	Today           bool     `json:"today"`
	Selected        bool     `json:"selected"`
	DiscountPercent int      `json:"discount_percent,omitempty"`
	Badge           string   `json:"badge,omitempty"`
	Classes         []string `json:"classes"`
}

// Clickable сообщает, можно ли выбрать ячейку
func (c DayCell) Clickable() bool {
	return !c.Empty && !c.Disabled
}

// cellClasses сопоставляет флаги ячейки и CSS-классы, порядок фиксирован
var cellClasses = []struct {
	class string
	isSet func(DayCell) bool
}{
	{"empty", func(c DayCell) bool { return c.Empty }},
	{"disabled", func(c DayCell) bool { return c.Disabled }},
	{"today", func(c DayCell) bool { return c.Today }},
	{"selected", func(c DayCell) bool { return c.Selected }},
	{"has-discount", func(c DayCell) bool { return c.DiscountPercent > 0 }},
}

// ClassesFor возвращает список классов ячейки
func ClassesFor(c DayCell) []string {
	classes := []string{"calendar-day"}
	for _, rule := range cellClasses {
		if rule.isSet(c) {
			classes = append(classes, rule.class)
		}
	}
	return classes
}

// MonthPage представляет отображаемый месяц календаря
type MonthPage struct {
	Year  int
	Month time.Month
}

// Prev возвращает предыдущий месяц с переходом через год
func (p MonthPage) Prev() MonthPage {
	if p.Month == time.January {
		return MonthPage{Year: p.Year - 1, Month: time.December}
	}
	return MonthPage{Year: p.Year, Month: p.Month - 1}
}

// Next возвращает следующий месяц с переходом через год
func (p MonthPage) Next() MonthPage {
	if p.Month == time.December {
		return MonthPage{Year: p.Year + 1, Month: time.January}
	}
	return MonthPage{Year: p.Year, Month: p.Month + 1}
}

// StartOffset возвращает число пустых ячеек перед первым днем (понедельник = 0)
func StartOffset(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return (int(first.Weekday()) + 6) % 7
}

// DaysIn возвращает количество дней в месяце
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildMonth строит сетку месяца. today и selected сравниваются как календарные даты.
func BuildMonth(page MonthPage, today time.Time, selected *time.Time, discounts domain.DiscountCalendar) []DayCell {
	offset := StartOffset(page.Year, page.Month)
	days := DaysIn(page.Year, page.Month)
	today = DateOf(today)

	cells := make([]DayCell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cell := DayCell{Empty: true}
		cell.Classes = ClassesFor(cell)
		cells = append(cells, cell)
	}

	for day := 1; day <= days; day++ {
		date := time.Date(page.Year, page.Month, day, 0, 0, 0, 0, time.UTC)
		cell := DayCell{
			Day:             day,
			Date:            date.Format(domain.DateLayout),
			Disabled:        date.Before(today),
			Today:           date.Equal(today),
			Selected:        selected != nil && date.Equal(*selected),
			DiscountPercent: discounts.PercentFor(date),
		}
		// Бейдж не дублирует информационную панель выбранной даты
		if cell.DiscountPercent > 0 && !cell.Selected {
			cell.Badge = fmt.Sprintf("-%d%%", cell.DiscountPercent)
		}
		cell.Classes = ClassesFor(cell)
		cells = append(cells, cell)
	}

	return cells
}

// DateOf отбрасывает время, сохраняя календарную дату в UTC
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату формата YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrDateUnavailable, s)
	}
	return d, nil
}
