package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/planet-defense/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventScoreChanged, Payload: &ScorePayload{Score: 10}, Frame: 1})
	q.Push(GameEvent{Type: EventGameOver, Frame: 2})

	assert.Equal(t, 2, q.Len())

	events := q.Consume()
	require.Len(t, events, 2)
	assert.Equal(t, EventScoreChanged, events[0].Type)
	assert.Equal(t, 10, events[0].Payload.(*ScorePayload).Score)
	assert.Equal(t, EventGameOver, events[1].Type)

	assert.Nil(t, q.Consume())
	assert.Equal(t, 0, q.Len())
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventScoreChanged, Frame: int64(i)})
	}

	events := q.Consume()
	require.Len(t, events, parameter.EventQueueSize)
	assert.Equal(t, int64(10), events[0].Frame)
	assert.Equal(t, int64(total-1), events[len(events)-1].Frame)
	assert.Equal(t, uint64(10), q.Dropped())
}

func TestQueueReset(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventGameEnded})
	q.Reset()
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Consume())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "EventGameOver", EventGameOver.String())
	assert.Equal(t, "EventUnknown", EventType(500).String())
	assert.Equal(t, "fire", SoundFire.String())
}
