package wizard

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	clk := clock.NewMock()
	d := NewDebouncer(clk, 300*time.Millisecond)

	var calls int32
	fn := func() { atomic.AddInt32(&calls, 1) }

	d.Trigger(fn)
	clk.Add(200 * time.Millisecond)
	d.Trigger(fn)
	clk.Add(200 * time.Millisecond)
	d.Trigger(fn)
	clk.Add(200 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	assert.True(t, d.Pending())

	clk.Add(100 * time.Millisecond)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)
	assert.False(t, d.Pending())
}

func TestDebouncer_Cancel(t *testing.T) {
	clk := clock.NewMock()
	d := NewDebouncer(clk, 300*time.Millisecond)

	var calls int32
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })

	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel())

	clk.Add(time.Second)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(nil, 0)
	assert.Equal(t, DefaultDebounceDelay, d.delay)
	assert.NotNil(t, d.clock)
}
