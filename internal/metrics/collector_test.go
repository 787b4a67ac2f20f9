package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestCollector_Empty(t *testing.T) {
	c := NewCollector()
	snap := c.Snapshot()

	assert.Nil(t, snap.Record)
	assert.Zero(t, snap.RejectedAnswers)
	assert.Zero(t, snap.Renumbered)
}

func TestCollector_RecordTiming(t *testing.T) {
	c := NewCollector()
	c.RecordTiming(OpRecord, 2*time.Minute)
	c.RecordTiming(OpRecord, 4*time.Minute)
	c.RecordTiming(OpRecord, 3*time.Minute)

	snap := c.Snapshot()
	require.NotNil(t, snap.Record)
	assert.Equal(t, int64(3), snap.Record.Count)
	assert.Equal(t, 9*time.Minute, snap.Record.Total)
	assert.Equal(t, 3*time.Minute, snap.Record.Average)
	assert.Equal(t, 2*time.Minute, snap.Record.Min)
	assert.Equal(t, 4*time.Minute, snap.Record.Max)
}

func TestCollector_Start(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	c := newCollector(clock.now)

	done := c.Start(OpRecord)
	clock.advance(90 * time.Second)
	done()
	clock.advance(30 * time.Second)

	snap := c.Snapshot()
	require.NotNil(t, snap.Record)
	assert.Equal(t, 90*time.Second, snap.Record.Total)
	assert.Equal(t, 2*time.Minute, snap.Elapsed)
}

func TestCollector_Counters(t *testing.T) {
	c := NewCollector()
	c.Increment(CountRejectedAnswer)
	c.Increment(CountRejectedAnswer)
	c.Increment(CountRenumbered)

	snap := c.Snapshot()
	assert.Equal(t, int64(2), snap.RejectedAnswers)
	assert.Equal(t, int64(1), snap.Renumbered)
}
