package wizard

import (
	"fmt"

	"github.com/avc/booking-wizard/internal/domain"
)

// CalendarView отображаемый месяц календаря
type CalendarView struct {
	Title string    `json:"title"`
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Cells []DayCell `json:"cells"`
}

// DateInfo информационная панель выбранной даты
type DateInfo struct {
	Date            string `json:"date"`
	Display         string `json:"display"`
	DiscountPercent int    `json:"discount_percent,omitempty"`
	DiscountBanner  string `json:"discount_banner,omitempty"`
}

// View снимок состояния мастера для отображения
type View struct {
	SessionID     string             `json:"session_id"`
	Step          Step               `json:"step"`
	Completed     bool               `json:"completed"`
	Steps         []StepIndicator    `json:"steps"`
	Calendar      CalendarView       `json:"calendar"`
	SelectedDate  *DateInfo          `json:"selected_date,omitempty"`
	CanProceed    bool               `json:"can_proceed"`
	ServiceType   domain.ServiceType `json:"service_type"`
	Level         domain.Level       `json:"level"`
	LevelTitle    string             `json:"level_title"`
	Area          int                `json:"area"`
	ParamPanel    domain.ServiceType `json:"param_panel,omitempty"`
	ExtraServices []ExtraServiceRow  `json:"extra_services"`
	DryCleaning   []DryCleaningRow   `json:"dry_cleaning"`
	Price         PricePanel         `json:"price"`
	Summary       *Summary           `json:"summary,omitempty"`
}

// View строит снимок для отображения. Отображение только читает состояние.
func (c *Controller) View() *View {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	v := &View{
		SessionID:   c.sessionID,
		Step:        s.CurrentStep,
		Completed:   s.Completed,
		Steps:       Indicator(s.CurrentStep),
		CanProceed:  s.SelectedDate != nil,
		ServiceType: s.ServiceType,
		Level:       s.Level,
		LevelTitle:  c.loc.LevelTitle(s.Level),
		Area:        s.AreaM2,
		Calendar: CalendarView{
			Title: c.loc.MonthTitle(c.page.Year, c.page.Month),
			Year:  c.page.Year,
			Month: int(c.page.Month),
			Cells: BuildMonth(c.page, c.today(), s.SelectedDate, c.discounts),
		},
		ExtraServices: BuildExtraServiceRows(c.loc, c.catalog, s),
		DryCleaning:   BuildDryCleaningRows(c.loc, c.catalog, s),
		Price:         buildPricePanel(c.loc, c.loading, c.price),
	}

	if s.SelectedDate != nil {
		info := &DateInfo{
			Date:            s.SelectedDate.Format(domain.DateLayout),
			Display:         fmt.Sprintf(c.loc.Info.Date, c.loc.LongDate(*s.SelectedDate)),
			DiscountPercent: s.SelectedDiscountPercent,
		}
		if s.SelectedDiscountPercent > 0 {
			info.DiscountBanner = fmt.Sprintf(c.loc.Info.Discount, s.SelectedDiscountPercent)
		}
		v.SelectedDate = info
	}

	if s.CurrentStep == StepParameters {
		v.ParamPanel = s.ServiceType
	}
	if s.CurrentStep == StepSummary && c.summary != nil {
		summary := *c.summary
		v.Summary = &summary
	}

	return v
}
