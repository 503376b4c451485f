package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avc/booking-wizard/internal/domain"
	"github.com/avc/booking-wizard/internal/wizard"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionStarter создает новые сессии мастера
type SessionStarter interface {
	Start(ctx context.Context) (*wizard.Controller, string, error)
}

// WizardHandler обслуживает API мастера бронирования
type WizardHandler struct {
	sessions SessionStarter
	logger   *zap.Logger
}

// NewWizardHandler создает новый WizardHandler
func NewWizardHandler(sessions SessionStarter, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{
		sessions: sessions,
		logger:   logger,
	}
}

type startResponse struct {
	Token string       `json:"token"`
	View  *wizard.View `json:"view"`
}

type submitResponse struct {
	DeepLink string       `json:"deep_link"`
	Message  string       `json:"message"`
	View     *wizard.View `json:"view"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type dateRequest struct {
	Date string `json:"date"`
}

type stepRequest struct {
	Step int `json:"step"`
}

type serviceTypeRequest struct {
	ServiceType domain.ServiceType `json:"service_type"`
}

type levelRequest struct {
	Level domain.Level `json:"level"`
}

type areaRequest struct {
	Area int `json:"area"`
}

// quantityRequest принимает количество строкой или числом, как ввел пользователь
type quantityRequest struct {
	Quantity json.RawMessage `json:"quantity"`
}

func (q quantityRequest) raw() string {
	var s string
	if err := json.Unmarshal(q.Quantity, &s); err == nil {
		return s
	}
	return string(q.Quantity)
}

// Start создает сессию и возвращает токен с начальным видом мастера
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctrl, token, err := h.sessions.Start(r.Context())
	if err != nil {
		h.logger.Error("failed to start session", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, http.StatusCreated, startResponse{Token: token, View: ctrl.View()})
}

// GetView возвращает текущий вид мастера
func (h *WizardHandler) GetView(w http.ResponseWriter, r *http.Request) {
	h.withController(w, r, func(ctrl *wizard.Controller) error {
		return nil
	})
}

// PrevMonth листает календарь назад
func (h *WizardHandler) PrevMonth(w http.ResponseWriter, r *http.Request) {
	h.withController(w, r, func(ctrl *wizard.Controller) error {
		ctrl.PrevMonth()
		return nil
	})
}

// NextMonth листает календарь вперед
func (h *WizardHandler) NextMonth(w http.ResponseWriter, r *http.Request) {
	h.withController(w, r, func(ctrl *wizard.Controller) error {
		ctrl.NextMonth()
		return nil
	})
}

// SelectDate выбирает дату
func (h *WizardHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req dateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.withController(w, r, func(ctrl *wizard.Controller) error {
		return ctrl.SelectDate(req.Date)
	})
}

// GoToStep переходит на шаг
func (h *WizardHandler) GoToStep(w http.ResponseWriter, r *http.Request) {
	var req stepRequest
	if !decodeBody(w, r, &req) {
		return
	}
	step := wizard.Step(req.Step)
	if !step.Valid() {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}
	h.withController(w, r, func(ctrl *wizard.Controller) error {
		return ctrl.GoToStep(step)
	})
}

// Next переходит на следующий шаг
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.withController(w, r, (*wizard.Controller).Next)
}

// Back возвращается на предыдущий шаг
func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.withController(w, r, (*wizard.Controller).Back)
}

// SetServiceType выбирает тип услуги
func (h *WizardHandler) SetServiceType(w http.ResponseWriter, r *http.Request) {
	var req serviceTypeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.withController(w, r, func(ctrl *wizard.Controller) error {
		return ctrl.SetServiceType(req.ServiceType)
	})
}

// SetLevel выбирает уровень уборки
func (h *WizardHandler) SetLevel(w http.ResponseWriter, r *http.Request) {
	var req levelRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.withController(w, r, func(ctrl *wizard.Controller) error {
		return ctrl.SetLevel(req.Level)
	})
}

// SetArea меняет площадь
func (h *WizardHandler) SetArea(w http.ResponseWriter, r *http.Request) {
	var req areaRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.withController(w, r, func(ctrl *wizard.Controller) error {
		return ctrl.SetArea(req.Area)
	})
}

// ToggleExtraService переключает дополнительную услугу
func (h *WizardHandler) ToggleExtraService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.withController(w, r, func(ctrl *wizard.Controller) error {
		_, err := ctrl.ToggleExtraService(id)
		return err
	})
}

// SetDryCleaningQuantity задает количество объекта химчистки
func (h *WizardHandler) SetDryCleaningQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req quantityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.withController(w, r, func(ctrl *wizard.Controller) error {
		return ctrl.SetDryCleaningQuantity(id, req.raw())
	})
}

// Submit отправляет заявку и возвращает ссылку мессенджера
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := GetController(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var contact wizard.Contact
	if !decodeBody(w, r, &contact) {
		return
	}

	result, err := ctrl.Submit(r.Context(), contact)
	if err != nil {
		h.writeWizardError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		DeepLink: result.DeepLink,
		Message:  result.Message,
		View:     ctrl.View(),
	})
}

// withController применяет действие к мастеру сессии и возвращает новый вид
func (h *WizardHandler) withController(w http.ResponseWriter, r *http.Request, action func(*wizard.Controller) error) {
	ctrl, ok := GetController(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := action(ctrl); err != nil {
		h.writeWizardError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ctrl.View())
}

// writeWizardError сопоставляет ошибки мастера и HTTP статусы
func (h *WizardHandler) writeWizardError(w http.ResponseWriter, err error) {
	var blockingErr *wizard.BlockingError
	switch {
	case errors.As(err, &blockingErr):
		writeError(w, http.StatusUnprocessableEntity, blockingErr.Message)
	case errors.Is(err, domain.ErrInvalidLevel), errors.Is(err, domain.ErrInvalidService):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnknownService):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDateRequired),
		errors.Is(err, domain.ErrDateUnavailable),
		errors.Is(err, domain.ErrInvalidStep),
		errors.Is(err, domain.ErrWizardCompleted):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("wizard action failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
