package broker_test

import (
	"github.com/myrjola/smartcop/internal/broker"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestBroker(t *testing.T) {
	type testCase struct {
		name     string
		testFunc func(b *broker.Broker[string])
	}
	tests := []testCase{
		{
			name: "every subscriber receives content",
			testFunc: func(b *broker.Broker[string]) {
				first := b.Subscribe()
				second := b.Subscribe()
				b.Publish("CASE-2026-000001")
				require.Equal(t, "CASE-2026-000001", <-first)
				require.Equal(t, "CASE-2026-000001", <-second)
			},
		},
		{
			name: "unsubscribe closes the channel",
			testFunc: func(b *broker.Broker[string]) {
				c := b.Subscribe()
				b.Unsubscribe(c)
				msg, ok := <-c
				require.Empty(t, msg)
				require.False(t, ok, "channel not closed")
				// Publishing without subscribers must not block.
				b.Publish("hello")
			},
		},
		{
			name: "slow subscriber does not block publisher",
			testFunc: func(b *broker.Broker[string]) {
				slow := b.Subscribe()
				b.Publish("1")
				b.Publish("2")
				b.Publish("3")
				// Subscribing waits for the broker to finish delivering "3".
				_ = b.Subscribe()
				require.Equal(t, "1", <-slow)
				require.Equal(t, "2", <-slow)
				b.Publish("4")
				require.Equal(t, "4", <-slow)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := broker.NewBroker[string](2)
			go br.Start()
			t.Cleanup(func() {
				br.Stop()
			})
			tt.testFunc(br)
		})
	}
}

func TestBroker_Stop(t *testing.T) {
	br := broker.NewBroker[int](1)
	go br.Start()
	c := br.Subscribe()
	br.Stop()
	br.Stop()
	_, ok := <-c
	require.False(t, ok, "subscriber channel not closed on stop")

	// Calls after stop return immediately.
	br.Publish(1)
	_, ok = <-br.Subscribe()
	require.False(t, ok)
}
