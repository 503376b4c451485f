package wizard

import (
	"sync"
	"time"

	"github.com/facebookgo/clock"
)

// DefaultDebounceDelay задержка пересчета для непрерывного ввода (поле площади, слайдер)
const DefaultDebounceDelay = 300 * time.Millisecond

// Debouncer откладывает вызов: новый Trigger отменяет ожидающий и планирует заново
type Debouncer struct {
	mu    sync.Mutex
	clock clock.Clock
	delay time.Duration
	timer *clock.Timer
	gen   uint64
}

// NewDebouncer создает Debouncer на заданных часах
func NewDebouncer(clk clock.Clock, delay time.Duration) *Debouncer {
	if clk == nil {
		clk = clock.New()
	}
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{clock: clk, delay: delay}
}

// Trigger отменяет запланированный вызов и планирует fn через задержку
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// Таймер мог быть отменен после срабатывания, но до захвата блокировки
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel отменяет запланированный вызов. Возвращает true, если вызов ожидал.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	pending := d.timer != nil
	d.stopLocked()
	d.gen++
	return pending
}

// Pending сообщает, есть ли запланированный вызов
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
