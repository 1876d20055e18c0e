package mesh

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aozyumenko/go-mesh/access"
	"github.com/aozyumenko/go-mesh/messages"
)

const (
	testClientAddr Address = 0x0100
	testNodeA      Address = 0x0001
	testNodeB      Address = 0x0002
	testNodeC      Address = 0x0003
	testAppIndex   uint16  = 1
)

func newTestElement(t *testing.T, transport *mockTransport, opts ...Option) *Element {
	t.Helper()
	e, err := NewElement(context.Background(), transport, messages.NewRegistry(), opts...)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestNewElementValidation(t *testing.T) {
	_, err := NewElement(context.Background(), nil, messages.NewRegistry())
	require.ErrorIs(t, err, ErrTransportNil)

	_, err = NewElement(context.Background(), newMockTransport(), nil)
	require.ErrorIs(t, err, ErrRegistryNil)
}

func TestElementSend(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	err := e.Send(context.Background(), testNodeA, testAppIndex, messages.GenericOnOffSet,
		access.Params{"onoff": 1, "tid": 7})
	require.NoError(t, err)

	sent := transport.sentPDUs()
	require.Len(t, sent, 1)
	assert.Equal(t, testNodeA, sent[0].dst)
	assert.Equal(t, testAppIndex, sent[0].appIndex)
	assert.Equal(t, []byte{0x82, 0x02, 0x01, 0x07}, sent[0].data)
}

func TestElementSendEncodeError(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	err := e.Send(context.Background(), testNodeA, testAppIndex, messages.GenericOnOffSet,
		access.Params{"tid": 7})
	require.ErrorIs(t, err, access.ErrMissingParam)
	assert.Empty(t, transport.sentPDUs())
}

func TestQueryFulfilled(t *testing.T) {
	transport := newMockTransport()
	transport.onSend = func(pdu sentPDU) {
		transport.inject(pdu.dst, pdu.appIndex, testClientAddr,
			mustEncode(messages.GenericOnOffStatus, access.Params{"present_onoff": 1}))
	}
	e := newTestElement(t, transport)

	msg, err := e.Query(context.Background(),
		Request{Destination: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffGet, Params: access.Params{}},
		Filter{Source: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffStatus},
		WithTimeout(time.Second))
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, uint64(1), msg.Params["present_onoff"])
}

func TestQueryTimeout(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	msg, err := e.Query(context.Background(),
		Request{Destination: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffGet, Params: access.Params{}},
		Filter{Source: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffStatus},
		WithTimeout(30*time.Millisecond))
	require.NoError(t, err)
	assert.Nil(t, msg)
}

func TestQueryFirstMatchWins(t *testing.T) {
	transport := newMockTransport()
	transport.onSend = func(pdu sentPDU) {
		transport.inject(pdu.dst, pdu.appIndex, testClientAddr,
			mustEncode(messages.GenericOnOffStatus, access.Params{"present_onoff": 1}))
		// A surplus duplicate right behind the first reply.
		transport.inject(pdu.dst, pdu.appIndex, testClientAddr,
			mustEncode(messages.GenericOnOffStatus, access.Params{"present_onoff": 0}))
	}
	e := newTestElement(t, transport)

	msg, err := e.Query(context.Background(),
		Request{Destination: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffGet, Params: access.Params{}},
		Filter{Source: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffStatus},
		WithTimeout(time.Second))
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, uint64(1), msg.Params["present_onoff"])
}

func TestQueryIgnoresOtherSources(t *testing.T) {
	transport := newMockTransport()
	transport.onSend = func(pdu sentPDU) {
		// A reply from the wrong node must not satisfy the filter.
		transport.inject(testNodeB, pdu.appIndex, testClientAddr,
			mustEncode(messages.GenericOnOffStatus, access.Params{"present_onoff": 1}))
	}
	e := newTestElement(t, transport)

	msg, err := e.Query(context.Background(),
		Request{Destination: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffGet, Params: access.Params{}},
		Filter{Source: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffStatus},
		WithTimeout(50*time.Millisecond))
	require.NoError(t, err)
	assert.Nil(t, msg)
}

func TestQueryContextCancelled(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Query(ctx,
		Request{Destination: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffGet, Params: access.Params{}},
		Filter{Source: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffStatus},
		WithTimeout(time.Second))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBindHandler(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	received := make(chan *Incoming, 1)
	require.NoError(t, e.Bind(messages.GenericOnOffSet, func(in *Incoming) {
		received <- in
	}))

	require.ErrorIs(t, e.Bind(messages.GenericOnOffSet, func(*Incoming) {}), ErrOpcodeBound)

	transport.inject(testNodeA, testAppIndex, testClientAddr,
		mustEncode(messages.GenericOnOffSet, access.Params{"onoff": 1, "tid": 3}))

	select {
	case in := <-received:
		assert.Equal(t, testNodeA, in.Src)
		assert.Equal(t, uint64(1), in.Message.Params["onoff"])
	case <-time.After(time.Second):
		t.Fatal("handler not invoked")
	}
}

func TestDispatchDropsMalformed(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	received := make(chan *Incoming, 1)
	require.NoError(t, e.Bind(messages.GenericOnOffSet, func(in *Incoming) {
		received <- in
	}))

	// Truncated set payload, then a valid one; only the valid one arrives.
	transport.inject(testNodeA, testAppIndex, testClientAddr, []byte{0x82, 0x02, 0x01})
	transport.inject(testNodeA, testAppIndex, testClientAddr,
		mustEncode(messages.GenericOnOffSet, access.Params{"onoff": 0, "tid": 4}))

	select {
	case in := <-received:
		assert.Equal(t, uint64(0), in.Message.Params["onoff"])
	case <-time.After(time.Second):
		t.Fatal("valid message not dispatched")
	}
	assert.Empty(t, received)
}

func TestUnknownOpcodeDoesNotMatchExpectations(t *testing.T) {
	transport := newMockTransport()
	transport.onSend = func(pdu sentPDU) {
		// Unregistered opcode from the right source; raw envelopes never
		// resolve expectations.
		transport.inject(pdu.dst, pdu.appIndex, testClientAddr, []byte{0xC1, 0x23, 0x45, 0xFF})
	}
	e := newTestElement(t, transport)

	msg, err := e.Query(context.Background(),
		Request{Destination: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffGet, Params: access.Params{}},
		Filter{Source: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffStatus},
		WithTimeout(50*time.Millisecond))
	require.NoError(t, err)
	assert.Nil(t, msg)
}

func TestElementClose(t *testing.T) {
	transport := newMockTransport()
	e, err := NewElement(context.Background(), transport, messages.NewRegistry())
	require.NoError(t, err)

	e.Close()
	e.Close() // idempotent

	sendErr := e.Send(context.Background(), testNodeA, testAppIndex, messages.GenericOnOffGet, access.Params{})
	require.ErrorIs(t, sendErr, ErrElementClosed)

	_, queryErr := e.Query(context.Background(),
		Request{Destination: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffGet, Params: access.Params{}},
		Filter{Source: testNodeA, AppIndex: testAppIndex, Opcode: messages.GenericOnOffStatus})
	require.ErrorIs(t, queryErr, ErrElementClosed)
}

func TestNextTIDAdvances(t *testing.T) {
	transport := newMockTransport()
	e := newTestElement(t, transport)

	seen := make(map[uint8]struct{}, 256)
	for i := 0; i < 256; i++ {
		seen[e.NextTID()] = struct{}{}
	}
	// One full cycle visits every 8-bit value exactly once.
	assert.Len(t, seen, 256)
}
