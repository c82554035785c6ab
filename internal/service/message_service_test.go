package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/store"
)

func newMessageService() *MessageService {
	return NewMessageService(store.NewMessageStore(nil), zap.NewNop())
}

func TestSendThenThreadIsSymmetric(t *testing.T) {
	svc := newMessageService()

	_, err := svc.Send("std-1", "bus-1", "Hello!")
	require.NoError(t, err)
	_, err = svc.Send("bus-1", "std-1", "Hi there")
	require.NoError(t, err)

	forward := svc.ThreadFor("std-1", "bus-1")
	backward := svc.ThreadFor("bus-1", "std-1")

	require.Len(t, forward, 2)
	assert.Equal(t, forward, backward)
	assert.Equal(t, "Hello!", forward[0].Text)
	assert.Equal(t, "Hi there", forward[1].Text)
}

func TestThreadExcludesOtherPairs(t *testing.T) {
	svc := newMessageService()

	_, err := svc.Send("std-1", "bus-1", "to bus-1")
	require.NoError(t, err)
	_, err = svc.Send("std-1", "bus-2", "to bus-2")
	require.NoError(t, err)

	thread := svc.ThreadFor("std-1", "bus-1")
	require.Len(t, thread, 1)
	assert.Equal(t, "to bus-1", thread[0].Text)
}

func TestSendWhitespaceOnlyIsSilentNoOp(t *testing.T) {
	svc := newMessageService()

	msg, err := svc.Send("std-1", "bus-1", "   \t ")
	require.NoError(t, err)
	assert.Nil(t, msg)

	assert.Empty(t, svc.ThreadFor("std-1", "bus-1"))
}

func TestSendRequiresParticipants(t *testing.T) {
	svc := newMessageService()

	_, err := svc.Send("", "bus-1", "hi")
	assert.Error(t, err)

	_, err = svc.Send("std-1", "", "hi")
	assert.Error(t, err)
}

func TestTimestampsStrictlyIncrease(t *testing.T) {
	svc := newMessageService()

	var prev int64
	for i := 0; i < 5; i++ {
		msg, err := svc.Send("std-1", "bus-1", "ping")
		require.NoError(t, err)
		assert.Greater(t, msg.Timestamp, prev)
		prev = msg.Timestamp
	}
}
