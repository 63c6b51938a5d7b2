package mqtt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mottufind/internal/pkg/logger"
)

func TestBuildClientOptions(t *testing.T) {
	opts := buildClientOptions(Config{BrokerURL: "tcp://broker:1883", ClientID: "mottufind-api"})

	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "broker:1883", opts.Servers[0].Host)
	assert.True(t, strings.HasPrefix(opts.ClientID, "mottufind-api-"))
	assert.True(t, opts.AutoReconnect)
	assert.True(t, opts.CleanSession)
}

func TestBuildClientOptions_UniqueClientIDs(t *testing.T) {
	a := buildClientOptions(Config{BrokerURL: "tcp://broker:1883", ClientID: "api"})
	b := buildClientOptions(Config{BrokerURL: "tcp://broker:1883", ClientID: "api"})

	assert.NotEqual(t, a.ClientID, b.ClientID)
}

func TestSubscribe_RejectsInvalidArguments(t *testing.T) {
	c := &Client{logger: logger.Nop{}, subscriptions: map[string]subscription{}}
	noop := func(string, []byte) error { return nil }

	assert.ErrorIs(t, c.Subscribe("", 1, noop), ErrInvalidTopic)
	assert.ErrorIs(t, c.Subscribe("mottufind/rfid/+/leituras", 3, noop), ErrInvalidQoS)
	assert.ErrorIs(t, c.Subscribe("mottufind/rfid/+/leituras", 1, nil), ErrSubscribeFailed)
}

func TestDispatch_RecoversFromPanicAndErrors(t *testing.T) {
	c := &Client{logger: logger.Nop{}, subscriptions: map[string]subscription{}}

	assert.NotPanics(t, func() {
		c.dispatch(func(string, []byte) error { panic("payload corrompido") }, "t", nil)
	})
	assert.NotPanics(t, func() {
		c.dispatch(func(string, []byte) error { return errors.New("inválido") }, "t", nil)
	})

	var got string
	c.dispatch(func(topic string, _ []byte) error { got = topic; return nil }, "mottufind/rfid/7/leituras", nil)
	assert.Equal(t, "mottufind/rfid/7/leituras", got)
}
