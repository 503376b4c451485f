package wizard

import (
	"sort"
	"time"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Step шаг мастера
type Step int

const (
	StepDate       Step = 1
	StepServices   Step = 2
	StepParameters Step = 3
	StepSummary    Step = 4
)

// DefaultArea площадь по умолчанию, м²
const DefaultArea = 50

// Valid проверяет, что шаг в диапазоне 1..4
func (s Step) Valid() bool {
	return s >= StepDate && s <= StepSummary
}

// State состояние мастера. Единственный источник правды для отображения.
type State struct {
	CurrentStep             Step
	Completed               bool
	SelectedDate            *time.Time
	SelectedDiscountPercent int
	ServiceType             domain.ServiceType
	Level                   domain.Level
	AreaM2                  int
	SelectedExtraServiceIDs []int64
	DryCleaningQuantities   map[int64]decimal.Decimal
	CalculatedPrice         *int64
	OriginalPrice           *int64
}

// NewState создает состояние с начальными значениями
func NewState() *State {
	return &State{
		CurrentStep:           StepDate,
		ServiceType:           domain.ServiceTypeCleaning,
		Level:                 domain.LevelBasic,
		AreaM2:                DefaultArea,
		DryCleaningQuantities: make(map[int64]decimal.Decimal),
	}
}

// HasExtraService сообщает, выбрана ли дополнительная услуга
func (s *State) HasExtraService(id int64) bool {
	return lo.Contains(s.SelectedExtraServiceIDs, id)
}

// toggleExtraService меняет принадлежность услуги множеству, сохраняя сортировку
func (s *State) toggleExtraService(id int64) bool {
	if s.HasExtraService(id) {
		s.SelectedExtraServiceIDs = lo.Without(s.SelectedExtraServiceIDs, id)
		return false
	}
	s.SelectedExtraServiceIDs = append(s.SelectedExtraServiceIDs, id)
	sort.Slice(s.SelectedExtraServiceIDs, func(i, j int) bool {
		return s.SelectedExtraServiceIDs[i] < s.SelectedExtraServiceIDs[j]
	})
	return true
}

// setDryCleaningQuantity сохраняет только положительные количества
func (s *State) setDryCleaningQuantity(id int64, qty decimal.Decimal) {
	if !qty.IsPositive() {
		delete(s.DryCleaningQuantities, id)
		return
	}
	s.DryCleaningQuantities[id] = qty
}

// DryCleaningIDs возвращает отсортированные ID объектов химчистки
func (s *State) DryCleaningIDs() []int64 {
	ids := lo.Keys(s.DryCleaningQuantities)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// StepStatus статус шага в индикаторе
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusActive    StepStatus = "active"
	StepStatusCompleted StepStatus = "completed"
)

// StepIndicator элемент индикатора шагов
type StepIndicator struct {
	Step   Step       `json:"step"`
	Status StepStatus `json:"status"`
}

// Indicator строит индикатор шагов для текущего шага
func Indicator(current Step) []StepIndicator {
	items := make([]StepIndicator, 0, int(StepSummary))
	for step := StepDate; step <= StepSummary; step++ {
		status := StepStatusPending
		switch {
		case step == current:
			status = StepStatusActive
		case step < current:
			status = StepStatusCompleted
		}
		items = append(items, StepIndicator{Step: step, Status: status})
	}
	return items
}
