package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		3:    "00:03",
		59:   "00:59",
		60:   "01:00",
		125:  "02:05",
		3599: "59:59",
		6000: "100:00",
		-5:   "00:00",
	}

	for in, want := range cases {
		assert.Equal(t, want, Clock(in), "Clock(%d)", in)
	}
}

func TestLongClock(t *testing.T) {
	assert.Equal(t, "00:00:00", LongClock(0))
	assert.Equal(t, "00:01:05", LongClock(65*time.Second))
	assert.Equal(t, "01:02:03", LongClock(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, "00:00:01", LongClock(1400*time.Millisecond))
}

func TestDayBounds(t *testing.T) {
	d := time.Date(2024, time.March, 9, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), RoundToStart(d))
	assert.Equal(t, time.Date(2024, time.March, 9, 23, 59, 59, 0, time.UTC), RoundToEnd(d))
}

func TestToKeyOrdering(t *testing.T) {
	a := time.Date(2024, time.March, 9, 14, 30, 0, 0, time.UTC)
	b := a.Add(time.Minute)

	assert.Less(t, string(ToKey(a)), string(ToKey(b)))

	c := a.Add(500 * time.Millisecond)
	assert.Less(t, string(ToKey(a)), string(ToKey(c)))

	local := a.In(time.FixedZone("UTC+1", 3600))
	assert.Equal(t, ToKey(a), ToKey(local))
	assert.Equal(t, "2024-03-09T14:30:00.000000000Z", string(ToKey(a)))
}
