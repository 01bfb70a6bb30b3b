package clock

import (
	"time"

	"github.com/julien-sobczak/the-moodwriter/pkg/resync"
)

var (
	// Lazy-load
	clockOnce      resync.Once
	clockSingleton Clock
)

type Clock interface {
	Now() time.Time
}

type DefaultClock struct{}

func (c DefaultClock) Now() time.Time {
	return time.Now()
}

// TestClock is a manual clock. Entries created while it is installed share its date.
type TestClock struct {
	now time.Time
}

func NewTestClockAt(date time.Time) *TestClock {
	return &TestClock{
		now: date,
	}
}

// FastForward moves the clock. Used to simulate consecutive days of journaling.
func (c *TestClock) FastForward(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// NextDay moves the clock exactly 24 hours later.
func (c *TestClock) NextDay() time.Time {
	return c.FastForward(24 * time.Hour)
}

func (c *TestClock) Now() time.Time {
	return c.now
}

func CurrentClock() Clock {
	if clockSingleton != nil {
		return clockSingleton
	}
	clockOnce.Do(func() {
		clockSingleton = DefaultClock{}
	})
	return clockSingleton
}

// Now is the same as time.Now() but can be controlled from unit tests.
func Now() time.Time {
	return CurrentClock().Now()
}

// StartOfDay truncates a timestamp to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func FreezeAt(now time.Time) *TestClock {
	testClock := NewTestClockAt(now)
	clockSingleton = testClock
	return testClock
}

func Freeze() *TestClock {
	return FreezeAt(time.Now())
}

func Unfreeze() {
	clockSingleton = nil
	clockOnce.Reset()
}
